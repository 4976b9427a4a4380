package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/scriptorium-fr/scriptorium/internal/database"
	"github.com/scriptorium-fr/scriptorium/internal/database/articles"
	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/database/bibleentities"
	"github.com/scriptorium-fr/scriptorium/internal/database/links"
	"github.com/scriptorium-fr/scriptorium/internal/http"
	"github.com/scriptorium-fr/scriptorium/internal/scheduler"
	"github.com/scriptorium-fr/scriptorium/internal/services"
	"github.com/scriptorium-fr/scriptorium/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.VerseStore = (*bible.Repository)(nil)
var _ services.ArticleStore = (*articles.Repository)(nil)
var _ services.EntityStore = (*bibleentities.Repository)(nil)
var _ services.LinkStore = (*links.Repository)(nil)

var _ http.EntityStore = (*bibleentities.Repository)(nil)
var _ http.VerseSearcher = (*bible.Repository)(nil)
var _ http.ArticleSearcher = (*articles.Repository)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.BibleReader = (*services.ReaderService)(nil)
var _ http.WikiEditor = (*services.WikiService)(nil)

// =============================================================================
// Background Work
// =============================================================================

// Link indexing runs in task workers and in the cron scheduler.
var _ tasks.LinkIndexer = (*services.WikiService)(nil)
var _ scheduler.Reindexer = (*services.WikiService)(nil)

// The task client is the asynchronous index queue of the wiki service.
var _ services.ArticleIndexQueue = (*tasks.Client)(nil)
