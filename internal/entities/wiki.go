package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WikiArticle struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	Title             string    `gorm:"index;size:512" json:"title"`
	Slug              string    `gorm:"uniqueIndex;size:512" json:"slug"`
	AuthorID          *string   `gorm:"size:36;index" json:"author_id,omitempty"`
	CurrentRevisionID *string   `gorm:"size:36" json:"current_revision_id,omitempty"`
	IsPublished       bool      `gorm:"default:true" json:"is_published"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type WikiRevision struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ArticleID   string    `gorm:"size:36;index" json:"article_id"`
	AuthorID    *string   `gorm:"size:36" json:"author_id,omitempty"`
	Content     string    `gorm:"type:text" json:"content"`
	ContentHash string    `gorm:"size:64;index" json:"content_hash"` // blake3, hex
	Comment     string    `gorm:"size:512" json:"comment,omitempty"`
	IsMinorEdit bool      `json:"is_minor_edit"`
	CreatedAt   time.Time `json:"created_at"`
}

// VerseLink records that an article's current revision references a chapter or verse.
type VerseLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID string    `gorm:"size:36;index" json:"article_id"`
	Reference string    `gorm:"size:256" json:"reference"`
	Kind      string    `gorm:"size:20" json:"kind"` // "verse" or "chapter"
	BookSlug  string    `gorm:"size:100;index:idx_link_target" json:"book_slug"`
	Chapter   int       `gorm:"index:idx_link_target" json:"chapter"`
	Verse     *int      `json:"verse,omitempty"` // nil for chapter links
	CreatedAt time.Time `json:"created_at"`
}

func (WikiArticle) TableName() string {
	return "wiki_articles"
}

func (WikiRevision) TableName() string {
	return "wiki_revisions"
}

func (VerseLink) TableName() string {
	return "verse_links"
}

func (a *WikiArticle) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (r *WikiRevision) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
