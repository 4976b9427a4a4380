// Package articles provides database operations for wiki articles and revisions.
//
// Every edit creates a WikiRevision; the article points at its current
// revision. Saving content identical to the current revision is a no-op.
//
// # Usage
//
//	repo := articles.NewRepository(db)
//	article, rev, err := repo.CreateArticle("Ponce Pilate", content, "création", nil)
//	rev, created, err := repo.AddRevision(article.ID, newContent, "typo", true, nil)
package articles

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/utils"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("an article with this slug already exists")
	ErrInvalidTitle    = errors.New("title does not produce a usable slug")
)

// Repository handles all wiki article database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new articles repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateArticle creates an article and its first revision.
func (r *Repository) CreateArticle(title, content, comment string, authorID *string) (*entities.WikiArticle, *entities.WikiRevision, error) {
	title = strings.TrimSpace(title)
	slug := wikilink.Slugify(title)
	if slug == "" {
		return nil, nil, ErrInvalidTitle
	}

	article := &entities.WikiArticle{
		Title:       title,
		Slug:        slug,
		AuthorID:    authorID,
		IsPublished: true,
	}
	revision := &entities.WikiRevision{
		AuthorID:    authorID,
		Content:     content,
		ContentHash: utils.ContentHash(content),
		Comment:     comment,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&entities.WikiArticle{}).Where("slug = ?", slug).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrSlugTaken
		}

		if err := tx.Create(article).Error; err != nil {
			return fmt.Errorf("failed to create article: %w", err)
		}

		revision.ArticleID = article.ID
		if err := tx.Create(revision).Error; err != nil {
			return fmt.Errorf("failed to create revision: %w", err)
		}

		article.CurrentRevisionID = &revision.ID
		return tx.Model(article).Update("current_revision_id", revision.ID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return article, revision, nil
}

// AddRevision records new content for an article. When the content hash
// matches the current revision, the current revision is returned and
// created is false.
func (r *Repository) AddRevision(articleID, content, comment string, minor bool, authorID *string) (*entities.WikiRevision, bool, error) {
	hash := utils.ContentHash(content)
	var (
		revision *entities.WikiRevision
		created  bool
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var article entities.WikiArticle
		if err := tx.Where("id = ?", articleID).First(&article).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		if article.CurrentRevisionID != nil {
			var current entities.WikiRevision
			err := tx.Where("id = ?", *article.CurrentRevisionID).First(&current).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil && current.ContentHash == hash {
				revision = &current
				return nil
			}
		}

		revision = &entities.WikiRevision{
			ArticleID:   article.ID,
			AuthorID:    authorID,
			Content:     content,
			ContentHash: hash,
			Comment:     comment,
			IsMinorEdit: minor,
		}
		if err := tx.Create(revision).Error; err != nil {
			return fmt.Errorf("failed to create revision: %w", err)
		}
		created = true

		return tx.Model(&article).Update("current_revision_id", revision.ID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return revision, created, nil
}

// GetArticleBySlug retrieves an article by its slug.
func (r *Repository) GetArticleBySlug(slug string) (*entities.WikiArticle, error) {
	var article entities.WikiArticle
	err := r.db.Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetArticleByID retrieves an article by its ID.
func (r *Repository) GetArticleByID(id string) (*entities.WikiArticle, error) {
	var article entities.WikiArticle
	err := r.db.Where("id = ?", id).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetCurrentRevision returns the revision the article currently points at.
func (r *Repository) GetCurrentRevision(article *entities.WikiArticle) (*entities.WikiRevision, error) {
	var revision entities.WikiRevision
	query := r.db.Where("article_id = ?", article.ID)
	if article.CurrentRevisionID != nil {
		query = query.Where("id = ?", *article.CurrentRevisionID)
	} else {
		query = query.Order("created_at DESC")
	}

	err := query.First(&revision).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

// GetRevisions returns the revision history of an article, newest first.
func (r *Repository) GetRevisions(articleID string) ([]entities.WikiRevision, error) {
	var revisions []entities.WikiRevision
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&revisions).Error
	return revisions, err
}

// GetRecentArticles returns published articles, most recently updated first.
func (r *Repository) GetRecentArticles(limit int) ([]entities.WikiArticle, error) {
	var list []entities.WikiArticle
	err := r.db.Where("is_published = ?", true).
		Order("updated_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// SearchArticles searches article titles (case-insensitive partial match).
func (r *Repository) SearchArticles(query string, limit int) ([]entities.WikiArticle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entities.WikiArticle{}, nil
	}

	var list []entities.WikiArticle
	searchPattern := "%" + query + "%"
	db := r.db.Where("is_published = ?", true)
	if slug := wikilink.Slugify(query); slug != "" {
		db = db.Where("(LOWER(title) LIKE LOWER(?) OR slug LIKE ?)", searchPattern, "%"+slug+"%")
	} else {
		db = db.Where("LOWER(title) LIKE LOWER(?)", searchPattern)
	}
	err := db.Order("title ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// GetAllArticleIDs returns the ID of every article.
func (r *Repository) GetAllArticleIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&entities.WikiArticle{}).Order("created_at ASC").Pluck("id", &ids).Error
	return ids, err
}
