package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntityType string

const (
	EntityTypePerson  EntityType = "person"
	EntityTypePlace   EntityType = "place"
	EntityTypeConcept EntityType = "concept"
	EntityTypeEvent   EntityType = "event"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityTypePerson, EntityTypePlace, EntityTypeConcept, EntityTypeEvent:
		return true
	}
	return false
}

// BibleEntity is a named person, place, concept or event that can be
// recognized in verse text by its name or one of its aliases.
type BibleEntity struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Name          string     `gorm:"index;size:256;not null" json:"name"`
	Slug          string     `gorm:"index;size:256" json:"slug"`
	Aliases       []string   `gorm:"type:text;serializer:json" json:"aliases"`
	EntityType    EntityType `gorm:"size:20;index" json:"entity_type"`
	Summary       *string    `gorm:"type:text" json:"summary,omitempty"`
	WikiArticleID *string    `gorm:"size:36;index" json:"wiki_article_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (BibleEntity) TableName() string {
	return "bible_entities"
}

func (e *BibleEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
