// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, book seeding
//	├── bible/           # Books and verses
//	├── articles/        # Wiki articles and their revisions
//	├── bibleentities/   # Named entities and verse attachments
//	└── links/           # Article to verse links
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./scriptorium.db")
//
//	// Create domain-specific repositories
//	bibleRepo := bible.NewRepository(db.DB)
//	articlesRepo := articles.NewRepository(db.DB)
//
//	// Use repositories
//	verses, err := bibleRepo.GetChapter("jean", 3, "crampon")
//	article, err := articlesRepo.GetArticleBySlug("ponce-pilate")
//
// # Interface Implementations
//
// Each sub-package implements specific interfaces:
//
//   - bible.Repository: implements services.VerseStore and http.VerseSearcher
//   - articles.Repository: implements services.ArticleStore and http.ArticleSearcher
//   - bibleentities.Repository: implements services.EntityStore and http.EntityStore
//   - links.Repository: implements services.LinkStore
//
// # Adding a New Domain
//
// To add a new domain (e.g., bookmarks):
//
//  1. Create a new sub-package: internal/database/bookmarks/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check in internal/interfaces
package database
