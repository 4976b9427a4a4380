package http

import (
	"github.com/scriptorium-fr/scriptorium/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Reader   BibleReader
	Wiki     WikiEditor
	Entities EntityStore
	Verses   VerseSearcher
	Articles ArticleSearcher
	Database Pinger

	// Translation used by verse search
	TranslationID string

	// Application info
	Version string

	// Task queue client (optional)
	TaskClient *tasks.Client
}
