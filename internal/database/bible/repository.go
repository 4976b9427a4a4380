// Package bible provides database operations for books and verses.
//
// # Usage
//
//	repo := bible.NewRepository(db)
//	verses, err := repo.GetChapter("jean", 3, "crampon")
//	n, err := repo.SaveVerses(imported)
package bible

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrVerseNotFound = errors.New("verse not found")
)

const saveBatchSize = 500

// VerseMatch is a search hit with enough book information to build a link.
type VerseMatch struct {
	ID       string `json:"id"`
	BookSlug string `json:"book_slug"`
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
	Href     string `json:"href"`
}

// Repository handles all book and verse database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bible repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBooks returns every book in canonical order.
func (r *Repository) GetBooks() ([]entities.BibleBook, error) {
	var books []entities.BibleBook
	err := r.db.Order("position ASC").Find(&books).Error
	return books, err
}

// GetBookBySlug retrieves a book by its URL slug.
func (r *Repository) GetBookBySlug(slug string) (*entities.BibleBook, error) {
	var book entities.BibleBook
	err := r.db.Where("slug = ?", slug).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetChapter returns the verses of one chapter in order, with their attached entities.
func (r *Repository) GetChapter(bookSlug string, chapter int, translationID string) ([]entities.BibleVerse, error) {
	book, err := r.GetBookBySlug(bookSlug)
	if err != nil {
		return nil, err
	}

	var verses []entities.BibleVerse
	err = r.db.Preload("Entities").
		Where("book_id = ? AND chapter = ? AND translation_id = ?", book.ID, chapter, translationID).
		Order("verse ASC").
		Find(&verses).Error
	return verses, err
}

// GetVerse retrieves a single verse with its attached entities.
func (r *Repository) GetVerse(bookSlug string, chapter, verse int, translationID string) (*entities.BibleVerse, error) {
	book, err := r.GetBookBySlug(bookSlug)
	if err != nil {
		return nil, err
	}

	var v entities.BibleVerse
	err = r.db.Preload("Entities").
		Where("book_id = ? AND chapter = ? AND verse = ? AND translation_id = ?", book.ID, chapter, verse, translationID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVerseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetVerseByID retrieves a verse by its ID.
func (r *Repository) GetVerseByID(id string) (*entities.BibleVerse, error) {
	var v entities.BibleVerse
	err := r.db.Preload("Entities").Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVerseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SaveVerses upserts verses keyed by (book, chapter, verse, translation).
// The text of an existing verse is replaced.
func (r *Repository) SaveVerses(verses []entities.BibleVerse) (int, error) {
	if len(verses) == 0 {
		return 0, nil
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "book_id"}, {Name: "chapter"}, {Name: "verse"}, {Name: "translation_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Omit("Entities").CreateInBatches(verses, saveBatchSize).Error
	if err != nil {
		return 0, fmt.Errorf("failed to save verses: %w", err)
	}
	return len(verses), nil
}

// CountVerses returns the number of stored verses of a translation.
func (r *Repository) CountVerses(translationID string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.BibleVerse{}).Where("translation_id = ?", translationID).Count(&count).Error
	return count, err
}

// SearchVerses finds verses whose text contains query, in canonical order.
func (r *Repository) SearchVerses(query, translationID string, limit int) ([]VerseMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []VerseMatch{}, nil
	}

	var verses []entities.BibleVerse
	err := r.db.
		Joins("JOIN bible_books ON bible_books.id = bible_verses.book_id").
		Where("bible_verses.translation_id = ? AND LOWER(bible_verses.text) LIKE LOWER(?)", translationID, "%"+query+"%").
		Order("bible_books.position ASC, bible_verses.chapter ASC, bible_verses.verse ASC").
		Limit(limit).
		Find(&verses).Error
	if err != nil {
		return nil, err
	}

	books, err := r.GetBooks()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.BibleBook, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	matches := make([]VerseMatch, 0, len(verses))
	for _, v := range verses {
		book := byID[v.BookID]
		matches = append(matches, VerseMatch{
			ID:       v.ID,
			BookSlug: book.Slug,
			BookName: book.Name,
			Chapter:  v.Chapter,
			Verse:    v.Verse,
			Text:     v.Text,
			Href:     "/bible/" + book.Slug + "/" + strconv.Itoa(v.Chapter) + "/" + strconv.Itoa(v.Verse),
		})
	}
	return matches, nil
}
