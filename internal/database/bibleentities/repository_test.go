package bibleentities

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptorium-fr/scriptorium/internal/database"
	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

const translation = "crampon"

type fixture struct {
	repo   *Repository
	verses *bible.Repository
}

func setupTestDB(t *testing.T) fixture {
	t.Helper()
	db, err := database.NewSilentDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return fixture{repo: NewRepository(db.DB), verses: bible.NewRepository(db.DB)}
}

func (f fixture) verse(t *testing.T, slug string, chapter, verse int, text string) *entities.BibleVerse {
	t.Helper()
	book, err := f.verses.GetBookBySlug(slug)
	require.NoError(t, err)
	_, err = f.verses.SaveVerses([]entities.BibleVerse{
		{BookID: book.ID, Chapter: chapter, Verse: verse, TranslationID: translation, Text: text},
	})
	require.NoError(t, err)
	v, err := f.verses.GetVerse(slug, chapter, verse, translation)
	require.NoError(t, err)
	return v
}

func TestRepository_CreateEntity(t *testing.T) {
	f := setupTestDB(t)

	e := &entities.BibleEntity{
		Name:       "  Ponce Pilate ",
		Aliases:    []string{"Pilate", " ", ""},
		EntityType: entities.EntityTypePerson,
	}
	require.NoError(t, f.repo.CreateEntity(e))

	assert.Len(t, e.ID, 36)
	assert.Equal(t, "Ponce Pilate", e.Name)
	assert.Equal(t, "ponce-pilate", e.Slug)

	stored, err := f.repo.GetEntityByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pilate"}, stored.Aliases)

	bySlug, err := f.repo.GetEntityBySlug("ponce-pilate")
	require.NoError(t, err)
	assert.Equal(t, e.ID, bySlug.ID)
}

func TestRepository_CreateEntity_Validation(t *testing.T) {
	f := setupTestDB(t)

	err := f.repo.CreateEntity(&entities.BibleEntity{Name: " ", EntityType: entities.EntityTypePlace})
	assert.ErrorIs(t, err, ErrEmptyName)

	err = f.repo.CreateEntity(&entities.BibleEntity{Name: "Rome", EntityType: "city"})
	assert.ErrorIs(t, err, ErrInvalidEntityType)
}

func TestRepository_UpdateEntity(t *testing.T) {
	f := setupTestDB(t)
	e := &entities.BibleEntity{Name: "Céphas", EntityType: entities.EntityTypePerson}
	require.NoError(t, f.repo.CreateEntity(e))

	summary := "Apôtre"
	e.Aliases = []string{"Pierre"}
	e.Summary = &summary
	require.NoError(t, f.repo.UpdateEntity(e))

	stored, err := f.repo.GetEntityByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pierre"}, stored.Aliases)
	require.NotNil(t, stored.Summary)
	assert.Equal(t, "Apôtre", *stored.Summary)
}

func TestRepository_ListEntities(t *testing.T) {
	f := setupTestDB(t)
	require.NoError(t, f.repo.CreateEntity(&entities.BibleEntity{Name: "Rome", EntityType: entities.EntityTypePlace}))
	require.NoError(t, f.repo.CreateEntity(&entities.BibleEntity{Name: "Paul", EntityType: entities.EntityTypePerson}))
	require.NoError(t, f.repo.CreateEntity(&entities.BibleEntity{Name: "Athènes", EntityType: entities.EntityTypePlace}))

	all, err := f.repo.ListEntities("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	places, err := f.repo.ListEntities(entities.EntityTypePlace)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Athènes", places[0].Name)
	assert.Equal(t, "Rome", places[1].Name)
}

func TestRepository_AttachToVerse(t *testing.T) {
	f := setupTestDB(t)
	v := f.verse(t, "matthieu", 27, 2, "Ils le livrèrent à Ponce Pilate, le gouverneur.")
	pilate := &entities.BibleEntity{Name: "Ponce Pilate", EntityType: entities.EntityTypePerson}
	require.NoError(t, f.repo.CreateEntity(pilate))

	require.NoError(t, f.repo.AttachToVerse(v.ID, pilate.ID))
	require.NoError(t, f.repo.AttachToVerse(v.ID, pilate.ID))

	list, err := f.repo.GetEntitiesForVerse(v.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pilate.ID, list[0].ID)

	reloaded, err := f.verses.GetVerseByID(v.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Entities, 1)

	require.NoError(t, f.repo.DetachFromVerse(v.ID, pilate.ID))
	list, err = f.repo.GetEntitiesForVerse(v.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_AttachToVerse_Missing(t *testing.T) {
	f := setupTestDB(t)
	v := f.verse(t, "marc", 1, 1, "Commencement de l'Évangile.")

	err := f.repo.AttachToVerse("missing", "missing")
	assert.ErrorIs(t, err, ErrVerseNotFound)

	err = f.repo.AttachToVerse(v.ID, "missing")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestRepository_GetEntitiesForChapter(t *testing.T) {
	f := setupTestDB(t)
	v1 := f.verse(t, "matthieu", 27, 2, "Ponce Pilate, le gouverneur.")
	v2 := f.verse(t, "matthieu", 27, 11, "Jésus comparut devant le gouverneur Pilate.")
	other := f.verse(t, "matthieu", 28, 1, "Marie de Magdala.")

	pilate := &entities.BibleEntity{Name: "Ponce Pilate", Aliases: []string{"Pilate"}, EntityType: entities.EntityTypePerson}
	jesus := &entities.BibleEntity{Name: "Jésus", EntityType: entities.EntityTypePerson}
	marie := &entities.BibleEntity{Name: "Marie de Magdala", EntityType: entities.EntityTypePerson}
	for _, e := range []*entities.BibleEntity{pilate, jesus, marie} {
		require.NoError(t, f.repo.CreateEntity(e))
	}
	require.NoError(t, f.repo.AttachToVerse(v1.ID, pilate.ID))
	require.NoError(t, f.repo.AttachToVerse(v2.ID, pilate.ID))
	require.NoError(t, f.repo.AttachToVerse(v2.ID, jesus.ID))
	require.NoError(t, f.repo.AttachToVerse(other.ID, marie.ID))

	list, err := f.repo.GetEntitiesForChapter("matthieu", 27, translation)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, pilate.ID, list[0].ID)
	assert.Equal(t, jesus.ID, list[1].ID)
	assert.Equal(t, []string{"Pilate"}, list[0].Aliases)
}
