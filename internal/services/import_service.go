package services

import (
	"errors"
	"log"
	"strings"

	"github.com/scriptorium-fr/scriptorium/internal/database/bibleentities"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

var ErrNotAVerseReference = errors.New("not a verse reference")

// VerseInput is one verse read from an external source.
type VerseInput struct {
	OSISBook string // OSIS book identifier, e.g. "Matt"
	Chapter  int
	Verse    int
	Text     string
}

// EntityInput describes an entity and the verses it should be attached to.
// Verses are wiki references such as "Jean 19:1".
type EntityInput struct {
	Name    string   `yaml:"name"`
	Slug    string   `yaml:"slug"`
	Type    string   `yaml:"type"`
	Aliases []string `yaml:"aliases"`
	Summary string   `yaml:"summary"`
	Verses  []string `yaml:"verses"`
}

// ImportService converts external inputs to entities and stores them.
type ImportService struct {
	verses   VerseStore
	entities EntityStore
}

func NewImportService(verses VerseStore, entityStore EntityStore) *ImportService {
	return &ImportService{
		verses:   verses,
		entities: entityStore,
	}
}

// ImportVerses stores verses for a translation. Verses of unknown books,
// with an empty text or a chapter outside the book are skipped.
func (s *ImportService) ImportVerses(inputs []VerseInput, translationID string) (ImportResult, error) {
	var result ImportResult

	bookIDs := make(map[string]string)
	batch := make([]entities.BibleVerse, 0, len(inputs))
	for _, in := range inputs {
		meta, ok := wikilink.BookByOSIS(in.OSISBook)
		text := strings.TrimSpace(in.Text)
		if !ok || text == "" || in.Chapter < 1 || in.Chapter > meta.Chapters || in.Verse < 1 {
			result.VersesSkipped++
			continue
		}

		bookID, cached := bookIDs[meta.Slug]
		if !cached {
			book, err := s.verses.GetBookBySlug(meta.Slug)
			if err != nil {
				return result, err
			}
			bookID = book.ID
			bookIDs[meta.Slug] = bookID
		}

		batch = append(batch, entities.BibleVerse{
			BookID:        bookID,
			Chapter:       in.Chapter,
			Verse:         in.Verse,
			TranslationID: translationID,
			Text:          text,
		})
	}

	n, err := s.verses.SaveVerses(batch)
	if err != nil {
		return result, err
	}
	result.VersesImported = n
	return result, nil
}

// ImportEntities creates or updates entities by slug and attaches them to
// the verses they list.
func (s *ImportService) ImportEntities(inputs []EntityInput, translationID string) (ImportResult, error) {
	var result ImportResult

	for _, in := range inputs {
		entity, created, err := s.upsertEntity(in)
		if err != nil {
			log.Printf("Skipping entity %q: %v", in.Name, err)
			result.EntitiesFailed++
			continue
		}
		if created {
			result.EntitiesCreated++
		} else {
			result.EntitiesUpdated++
		}

		for _, ref := range in.Verses {
			if err := s.attach(entity, ref, translationID); err != nil {
				log.Printf("Cannot attach %q to %q: %v", entity.Name, ref, err)
				result.AttachmentsFailed++
				continue
			}
			result.AttachmentsCreated++
		}
	}
	return result, nil
}

func (s *ImportService) upsertEntity(in EntityInput) (*entities.BibleEntity, bool, error) {
	slug := in.Slug
	if slug == "" {
		slug = wikilink.Slugify(in.Name)
	}

	var summary *string
	if strings.TrimSpace(in.Summary) != "" {
		text := strings.TrimSpace(in.Summary)
		summary = &text
	}

	existing, err := s.entities.GetEntityBySlug(slug)
	if err != nil && !errors.Is(err, bibleentities.ErrEntityNotFound) {
		return nil, false, err
	}
	if err == nil {
		existing.Name = in.Name
		existing.Aliases = in.Aliases
		existing.EntityType = entities.EntityType(in.Type)
		existing.Summary = summary
		return existing, false, s.entities.UpdateEntity(existing)
	}

	entity := &entities.BibleEntity{
		Name:       in.Name,
		Slug:       slug,
		Aliases:    in.Aliases,
		EntityType: entities.EntityType(in.Type),
		Summary:    summary,
	}
	return entity, true, s.entities.CreateEntity(entity)
}

func (s *ImportService) attach(entity *entities.BibleEntity, ref, translationID string) error {
	link := wikilink.Resolve(ref)
	if link.Kind != wikilink.KindVerse {
		return ErrNotAVerseReference
	}

	verse, err := s.verses.GetVerse(link.BookSlug, link.Chapter, link.Verse, translationID)
	if err != nil {
		return err
	}
	return s.entities.AttachToVerse(verse.ID, entity.ID)
}
