package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

type BibleBook struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id"`
	Name               string    `gorm:"uniqueIndex;size:100" json:"name"` // French display name, e.g. "Matthieu"
	NameEN             string    `gorm:"size:100" json:"name_en"`
	Slug               string    `gorm:"uniqueIndex;size:100" json:"slug"`
	OSISID             string    `gorm:"index;size:20" json:"osis_id"`
	Testament          Testament `gorm:"size:10;index" json:"testament"`
	Position           int       `gorm:"index" json:"position"`
	Chapters           int       `json:"chapters"`
	IsDeuterocanonical bool      `json:"is_deuterocanonical"`
	CreatedAt          time.Time `json:"created_at"`
}

type BibleVerse struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	BookID        string        `gorm:"size:36;uniqueIndex:idx_verse_ref" json:"book_id"`
	Chapter       int           `gorm:"uniqueIndex:idx_verse_ref" json:"chapter"`
	Verse         int           `gorm:"uniqueIndex:idx_verse_ref" json:"verse"`
	TranslationID string        `gorm:"size:50;uniqueIndex:idx_verse_ref" json:"translation_id"`
	Text          string        `gorm:"type:text" json:"text"`
	Entities      []BibleEntity `gorm:"many2many:verse_entities;" json:"entities,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (BibleBook) TableName() string {
	return "bible_books"
}

func (BibleVerse) TableName() string {
	return "bible_verses"
}

func (b *BibleBook) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (v *BibleVerse) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
