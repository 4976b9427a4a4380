package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8190), cfg.HTTP.Port)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "crampon", cfg.Bible.TranslationID)
	assert.Equal(t, 512, cfg.Render.CacheSize)
	assert.Equal(t, "0 3 * * *", cfg.LinkReindex.Schedule)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TRANSLATION_ID", "segond")
	t.Setenv("LINKS_REINDEX_ENABLED", "false")
	t.Setenv("TASK_WORKERS", "4")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "segond", cfg.Bible.TranslationID)
	assert.False(t, cfg.LinkReindex.Enabled)
	assert.Equal(t, 4, cfg.Tasks.Workers)
}
