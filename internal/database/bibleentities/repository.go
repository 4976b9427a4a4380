// Package bibleentities provides database operations for named Bible entities
// and their attachment to verses.
//
// # Usage
//
//	repo := bibleentities.NewRepository(db)
//	err := repo.CreateEntity(&entities.BibleEntity{Name: "Ponce Pilate", EntityType: entities.EntityTypePerson})
//	err = repo.AttachToVerse(verseID, entity.ID)
//	list, err := repo.GetEntitiesForChapter("matthieu", 27, "crampon")
package bibleentities

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

var (
	ErrEntityNotFound    = errors.New("entity not found")
	ErrVerseNotFound     = errors.New("verse not found")
	ErrEmptyName         = errors.New("entity name is required")
	ErrInvalidEntityType = errors.New("entity type must be person, place, concept or event")
)

// Repository handles all entity database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entities repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func normalize(e *entities.BibleEntity) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return ErrEmptyName
	}
	if !e.EntityType.Valid() {
		return ErrInvalidEntityType
	}
	if e.Slug == "" {
		e.Slug = wikilink.Slugify(e.Name)
	}

	aliases := make([]string, 0, len(e.Aliases))
	for _, a := range e.Aliases {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	e.Aliases = aliases
	return nil
}

// CreateEntity validates and stores a new entity.
func (r *Repository) CreateEntity(e *entities.BibleEntity) error {
	if err := normalize(e); err != nil {
		return err
	}
	return r.db.Create(e).Error
}

// UpdateEntity validates and saves every field of an existing entity.
func (r *Repository) UpdateEntity(e *entities.BibleEntity) error {
	if err := normalize(e); err != nil {
		return err
	}
	return r.db.Save(e).Error
}

// GetEntityByID retrieves an entity by its ID.
func (r *Repository) GetEntityByID(id string) (*entities.BibleEntity, error) {
	var e entities.BibleEntity
	err := r.db.Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEntityBySlug retrieves the first entity created with the given slug.
func (r *Repository) GetEntityBySlug(slug string) (*entities.BibleEntity, error) {
	var e entities.BibleEntity
	err := r.db.Where("slug = ?", slug).Order("created_at ASC").First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEntities returns entities ordered by name. An empty type returns all of them.
func (r *Repository) ListEntities(entityType entities.EntityType) ([]entities.BibleEntity, error) {
	var list []entities.BibleEntity
	query := r.db.Order("name ASC")
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *Repository) loadPair(verseID, entityID string) (*entities.BibleVerse, *entities.BibleEntity, error) {
	var verse entities.BibleVerse
	if err := r.db.Where("id = ?", verseID).First(&verse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrVerseNotFound
		}
		return nil, nil, err
	}
	entity, err := r.GetEntityByID(entityID)
	if err != nil {
		return nil, nil, err
	}
	return &verse, entity, nil
}

// AttachToVerse links an entity to a verse. Attaching twice is a no-op.
func (r *Repository) AttachToVerse(verseID, entityID string) error {
	verse, entity, err := r.loadPair(verseID, entityID)
	if err != nil {
		return err
	}
	if err := r.db.Model(verse).Association("Entities").Append(entity); err != nil {
		return fmt.Errorf("failed to attach entity: %w", err)
	}
	return nil
}

// DetachFromVerse removes the link between an entity and a verse.
func (r *Repository) DetachFromVerse(verseID, entityID string) error {
	verse, entity, err := r.loadPair(verseID, entityID)
	if err != nil {
		return err
	}
	return r.db.Model(verse).Association("Entities").Delete(entity)
}

// GetEntitiesForVerse returns the entities attached to one verse.
func (r *Repository) GetEntitiesForVerse(verseID string) ([]entities.BibleEntity, error) {
	var list []entities.BibleEntity
	err := r.db.
		Joins("JOIN verse_entities ON verse_entities.bible_entity_id = bible_entities.id").
		Where("verse_entities.bible_verse_id = ?", verseID).
		Order("bible_entities.name ASC").
		Find(&list).Error
	return list, err
}

// GetEntitiesForChapter returns the distinct entities attached to any verse of a chapter.
func (r *Repository) GetEntitiesForChapter(bookSlug string, chapter int, translationID string) ([]entities.BibleEntity, error) {
	var list []entities.BibleEntity
	err := r.db.
		Where(`bible_entities.id IN (
			SELECT verse_entities.bible_entity_id FROM verse_entities
			JOIN bible_verses ON bible_verses.id = verse_entities.bible_verse_id
			JOIN bible_books ON bible_books.id = bible_verses.book_id
			WHERE bible_books.slug = ? AND bible_verses.chapter = ? AND bible_verses.translation_id = ?)`,
			bookSlug, chapter, translationID).
		Order("bible_entities.created_at ASC").
		Find(&list).Error
	return list, err
}
