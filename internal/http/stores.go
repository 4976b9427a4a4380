package http

import (
	"context"

	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/services"
)

// Each controller depends on the narrow interface it needs. The concrete
// services and repositories are wired in entrypoint.

// BibleReader serves annotated chapters and verses.
type BibleReader interface {
	TranslationID() string
	GetBooks() ([]entities.BibleBook, error)
	GetChapter(bookSlug string, chapter int) (*services.ChapterView, error)
	GetVerse(bookSlug string, chapter, verse int) (*services.VerseDetail, error)
}

// WikiEditor reads and edits wiki articles.
type WikiEditor interface {
	CreateArticle(ctx context.Context, in services.ArticleInput) (*entities.WikiArticle, *entities.WikiRevision, error)
	UpdateArticle(ctx context.Context, slug string, in services.ArticleInput) (*entities.WikiRevision, bool, error)
	GetRenderedArticle(slug string) (*services.ArticleView, error)
	GetRevisions(slug string) ([]entities.WikiRevision, error)
	ListRecent(limit int) ([]entities.WikiArticle, error)
}

// EntityStore manages Bible entities and their verse attachments.
type EntityStore interface {
	CreateEntity(e *entities.BibleEntity) error
	GetEntityBySlug(slug string) (*entities.BibleEntity, error)
	ListEntities(entityType entities.EntityType) ([]entities.BibleEntity, error)
	AttachToVerse(verseID, entityID string) error
	GetEntitiesForVerse(verseID string) ([]entities.BibleEntity, error)
}

// VerseSearcher finds verses containing a text.
type VerseSearcher interface {
	SearchVerses(query, translationID string, limit int) ([]bible.VerseMatch, error)
}

// ArticleSearcher finds articles by title or slug.
type ArticleSearcher interface {
	SearchArticles(query string, limit int) ([]entities.WikiArticle, error)
}
