// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - VerseStore, ArticleStore, EntityStore, LinkStore: storage used by the
//     services (internal/services/interfaces.go)
//   - BibleReader, WikiEditor, EntityStore, VerseSearcher, ArticleSearcher:
//     what each HTTP controller needs (internal/http/stores.go)
//
// ## Background Work Interfaces
//
//   - ArticleIndexQueue: asynchronous link indexing (internal/services/interfaces.go)
//   - LinkIndexer: what task processors call (internal/tasks/index_links.go)
//   - Reindexer: what the cron scheduler calls (internal/scheduler/link_reindex.go)
//
// # Adding a New Entity Source
//
// Importers turn an external format into service inputs; they never touch the
// database directly.
//
//  1. Add a parser in internal/importers/ returning []services.EntityInput
//     or []services.VerseInput.
//
//  2. Add a CLI command in internal/cli/ that parses the file and calls
//     services.ImportService.
//
//  3. Register the command in main.go.
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/<domain>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add the model to the AutoMigrate list in internal/database/database.go
//
//  4. Add compile-time check:
//
//     var _ services.SomeStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
