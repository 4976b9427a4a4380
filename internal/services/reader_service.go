package services

import (
	"errors"

	"github.com/scriptorium-fr/scriptorium/internal/annotate"
	"github.com/scriptorium-fr/scriptorium/internal/database/links"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/render"
)

var ErrChapterOutOfRange = errors.New("chapter out of range")

// VerseView is a verse with its entity annotations.
type VerseView struct {
	ID       string            `json:"id"`
	Verse    int               `json:"verse"`
	Text     string            `json:"text"`
	Segments annotate.Segments `json:"segments"`
	HTML     string            `json:"html"`
}

type ChapterView struct {
	Book          entities.BibleBook     `json:"book"`
	Chapter       int                    `json:"chapter"`
	TranslationID string                 `json:"translation_id"`
	Verses        []VerseView            `json:"verses"`
	Entities      []entities.BibleEntity `json:"entities"`
	Backlinks     []links.Backlink       `json:"backlinks"`
}

type VerseDetail struct {
	Book      entities.BibleBook     `json:"book"`
	Chapter   int                    `json:"chapter"`
	Verse     VerseView              `json:"verse"`
	Entities  []entities.BibleEntity `json:"entities"`
	Backlinks []links.Backlink       `json:"backlinks"`
}

// ReaderService assembles annotated chapters and verses for the reader.
type ReaderService struct {
	verses        VerseStore
	entities      EntityStore
	links         LinkStore
	translationID string
}

func NewReaderService(verses VerseStore, entityStore EntityStore, linkStore LinkStore, translationID string) *ReaderService {
	return &ReaderService{
		verses:        verses,
		entities:      entityStore,
		links:         linkStore,
		translationID: translationID,
	}
}

func (s *ReaderService) TranslationID() string {
	return s.translationID
}

func (s *ReaderService) GetBooks() ([]entities.BibleBook, error) {
	return s.verses.GetBooks()
}

func (s *ReaderService) bookAndChapter(bookSlug string, chapter int) (*entities.BibleBook, error) {
	book, err := s.verses.GetBookBySlug(bookSlug)
	if err != nil {
		return nil, err
	}
	if chapter < 1 || chapter > book.Chapters {
		return nil, ErrChapterOutOfRange
	}
	return book, nil
}

// GetChapter annotates every verse of a chapter with the entities attached
// anywhere in that chapter, using a single compiled matcher.
func (s *ReaderService) GetChapter(bookSlug string, chapter int) (*ChapterView, error) {
	book, err := s.bookAndChapter(bookSlug, chapter)
	if err != nil {
		return nil, err
	}

	verses, err := s.verses.GetChapter(book.Slug, chapter, s.translationID)
	if err != nil {
		return nil, err
	}
	chapterEntities, err := s.entities.GetEntitiesForChapter(book.Slug, chapter, s.translationID)
	if err != nil {
		return nil, err
	}
	backlinks, err := s.links.GetBacklinks(book.Slug, chapter, 0)
	if err != nil {
		return nil, err
	}

	matcher := annotate.NewMatcher(chapterEntities)
	views := make([]VerseView, 0, len(verses))
	for _, v := range verses {
		views = append(views, verseView(matcher, v))
	}

	return &ChapterView{
		Book:          *book,
		Chapter:       chapter,
		TranslationID: s.translationID,
		Verses:        views,
		Entities:      chapterEntities,
		Backlinks:     backlinks,
	}, nil
}

// GetVerse annotates one verse with the entities attached to it.
func (s *ReaderService) GetVerse(bookSlug string, chapter, verse int) (*VerseDetail, error) {
	book, err := s.bookAndChapter(bookSlug, chapter)
	if err != nil {
		return nil, err
	}

	v, err := s.verses.GetVerse(book.Slug, chapter, verse, s.translationID)
	if err != nil {
		return nil, err
	}
	backlinks, err := s.links.GetBacklinks(book.Slug, chapter, verse)
	if err != nil {
		return nil, err
	}

	return &VerseDetail{
		Book:      *book,
		Chapter:   chapter,
		Verse:     verseView(annotate.NewMatcher(v.Entities), *v),
		Entities:  v.Entities,
		Backlinks: backlinks,
	}, nil
}

func verseView(m *annotate.Matcher, v entities.BibleVerse) VerseView {
	segments := m.Annotate(v.Text)
	return VerseView{
		ID:       v.ID,
		Verse:    v.Verse,
		Text:     v.Text,
		Segments: segments,
		HTML:     render.RenderSegments(segments),
	}
}
