package services

import (
	"github.com/scriptorium-fr/scriptorium/internal/database/links"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

// VerseStore provides access to books and verses.
type VerseStore interface {
	GetBooks() ([]entities.BibleBook, error)
	GetBookBySlug(slug string) (*entities.BibleBook, error)
	GetChapter(bookSlug string, chapter int, translationID string) ([]entities.BibleVerse, error)
	GetVerse(bookSlug string, chapter, verse int, translationID string) (*entities.BibleVerse, error)
	SaveVerses(verses []entities.BibleVerse) (int, error)
}

// ArticleStore persists wiki articles and their revisions.
type ArticleStore interface {
	CreateArticle(title, content, comment string, authorID *string) (*entities.WikiArticle, *entities.WikiRevision, error)
	AddRevision(articleID, content, comment string, minor bool, authorID *string) (*entities.WikiRevision, bool, error)
	GetArticleBySlug(slug string) (*entities.WikiArticle, error)
	GetArticleByID(id string) (*entities.WikiArticle, error)
	GetCurrentRevision(article *entities.WikiArticle) (*entities.WikiRevision, error)
	GetRevisions(articleID string) ([]entities.WikiRevision, error)
	GetRecentArticles(limit int) ([]entities.WikiArticle, error)
	GetAllArticleIDs() ([]string, error)
}

// EntityStore persists Bible entities and their verse attachments.
type EntityStore interface {
	CreateEntity(e *entities.BibleEntity) error
	UpdateEntity(e *entities.BibleEntity) error
	GetEntityBySlug(slug string) (*entities.BibleEntity, error)
	AttachToVerse(verseID, entityID string) error
	GetEntitiesForChapter(bookSlug string, chapter int, translationID string) ([]entities.BibleEntity, error)
}

// LinkStore persists article to verse links.
type LinkStore interface {
	ReplaceArticleLinks(articleID string, rows []entities.VerseLink) error
	GetBacklinks(bookSlug string, chapter, verse int) ([]links.Backlink, error)
}

// ArticleIndexQueue schedules link indexing of an article in the background.
type ArticleIndexQueue interface {
	EnqueueArticleIndex(articleID string) error
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	VersesImported     int `json:"verses_imported"`
	VersesSkipped      int `json:"verses_skipped"`
	EntitiesCreated    int `json:"entities_created"`
	EntitiesUpdated    int `json:"entities_updated"`
	EntitiesFailed     int `json:"entities_failed"`
	AttachmentsCreated int `json:"attachments_created"`
	AttachmentsFailed  int `json:"attachments_failed"`
}
