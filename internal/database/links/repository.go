// Package links stores which chapters and verses each wiki article references.
//
// Rows are derived data: they are rebuilt from an article's current revision
// whenever it changes, and can be rebuilt for every article at once.
//
// # Usage
//
//	repo := links.NewRepository(db)
//	err := repo.ReplaceArticleLinks(articleID, rows)
//	backlinks, err := repo.GetBacklinks("jean", 3, 16)
package links

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

// Backlink is an article that references a chapter or verse.
type Backlink struct {
	ArticleID    string `json:"article_id"`
	ArticleTitle string `json:"article_title"`
	ArticleSlug  string `json:"article_slug"`
	Reference    string `json:"reference"`
}

// Repository handles all verse link database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new links repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceArticleLinks deletes the article's links and inserts the given ones
// in a single transaction.
func (r *Repository) ReplaceArticleLinks(articleID string, rows []entities.VerseLink) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&entities.VerseLink{}).Error; err != nil {
			return fmt.Errorf("failed to delete links: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].ArticleID = articleID
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create links: %w", err)
		}
		return nil
	})
}

// GetArticleLinks returns the links of one article in insertion order.
func (r *Repository) GetArticleLinks(articleID string) ([]entities.VerseLink, error) {
	var rows []entities.VerseLink
	err := r.db.Where("article_id = ?", articleID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// GetBacklinks returns the articles linking to a verse, or to its whole
// chapter. A verse of 0 asks for links to the chapter only.
func (r *Repository) GetBacklinks(bookSlug string, chapter, verse int) ([]Backlink, error) {
	query := r.db.Table("verse_links").
		Select("DISTINCT wiki_articles.id AS article_id, wiki_articles.title AS article_title, wiki_articles.slug AS article_slug, verse_links.reference AS reference").
		Joins("JOIN wiki_articles ON wiki_articles.id = verse_links.article_id").
		Where("verse_links.book_slug = ? AND verse_links.chapter = ?", bookSlug, chapter)

	if verse > 0 {
		query = query.Where("(verse_links.verse = ? OR verse_links.verse IS NULL)", verse)
	} else {
		query = query.Where("verse_links.verse IS NULL")
	}

	var backlinks []Backlink
	err := query.Order("wiki_articles.title ASC, verse_links.reference ASC").Scan(&backlinks).Error
	return backlinks, err
}

// CountLinks returns the total number of stored links.
func (r *Repository) CountLinks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.VerseLink{}).Count(&count).Error
	return count, err
}
