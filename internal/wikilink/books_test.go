package wikilink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooks(t *testing.T) {
	all := Books()
	require.Len(t, all, 73)

	for i, b := range all {
		assert.Equal(t, i+1, b.Position, b.Name)
		assert.NotEmpty(t, b.Slug, b.Name)
		assert.Positive(t, b.Chapters, b.Name)
	}

	assert.Equal(t, "Genèse", all[0].Name)
	assert.Equal(t, "Apocalypse", all[72].Name)
	assert.Equal(t, TestamentOld, all[45].Testament)
	assert.Equal(t, TestamentNew, all[46].Testament)
}

func TestBooks_ReturnsCopy(t *testing.T) {
	all := Books()
	all[0].Slug = "changed"

	slug, ok := BookSlug("Genèse")
	require.True(t, ok)
	assert.Equal(t, "geneses", slug)
}

func TestBooks_SlugsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, b := range Books() {
		if other, dup := seen[b.Slug]; dup {
			t.Errorf("slug %q used by %q and %q", b.Slug, other, b.Name)
		}
		seen[b.Slug] = b.Name
	}
}

func TestBookSlug(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Genèse", "geneses"},
		{"Deutéronome", "deuterome"},
		{"Actes des Apôtres", "actes"},
		{"Isaïe", "isaie"},
		{"Ézéchiel", "ezechiel"},
		{"3 Jean", "3-jean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, ok := BookSlug(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.expected, slug)
		})
	}

	_, ok := BookSlug("genèse")
	assert.False(t, ok, "lookup is exact")
}

func TestBookByOSIS(t *testing.T) {
	b, ok := BookByOSIS("matt")
	require.True(t, ok)
	assert.Equal(t, "matthieu", b.Slug)

	b, ok = BookByOSIS("1Macc")
	require.True(t, ok)
	assert.True(t, b.Deuterocanonical)

	_, ok = BookByOSIS("Nope")
	assert.False(t, ok)
}

func TestBookBySlug(t *testing.T) {
	b, ok := BookBySlug("psaumes")
	require.True(t, ok)
	assert.Equal(t, 150, b.Chapters)
	assert.Equal(t, "Psalms", b.NameEN)
}
