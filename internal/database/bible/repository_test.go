package bible

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptorium-fr/scriptorium/internal/database"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

const translation = "crampon"

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewSilentDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func seedJohn3(t *testing.T, repo *Repository) *entities.BibleBook {
	t.Helper()
	john, err := repo.GetBookBySlug("jean")
	require.NoError(t, err)

	_, err = repo.SaveVerses([]entities.BibleVerse{
		{BookID: john.ID, Chapter: 3, Verse: 17, TranslationID: translation, Text: "Car Dieu n'a pas envoyé son Fils dans le monde pour juger le monde."},
		{BookID: john.ID, Chapter: 3, Verse: 16, TranslationID: translation, Text: "Car Dieu a tant aimé le monde qu'il a donné son Fils unique."},
		{BookID: john.ID, Chapter: 4, Verse: 1, TranslationID: translation, Text: "Jésus apprit que les pharisiens avaient entendu dire."},
	})
	require.NoError(t, err)
	return john
}

func TestRepository_GetBooks(t *testing.T) {
	repo := setupTestDB(t)

	books, err := repo.GetBooks()
	require.NoError(t, err)
	require.Len(t, books, 73)
	assert.Equal(t, "geneses", books[0].Slug)
	assert.Equal(t, "apocalypse", books[72].Slug)
}

func TestRepository_GetBookBySlug_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetBookBySlug("nope")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestRepository_GetChapter(t *testing.T) {
	repo := setupTestDB(t)
	seedJohn3(t, repo)

	verses, err := repo.GetChapter("jean", 3, translation)
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, 16, verses[0].Verse)
	assert.Equal(t, 17, verses[1].Verse)

	verses, err = repo.GetChapter("jean", 3, "segond")
	require.NoError(t, err)
	assert.Empty(t, verses)

	_, err = repo.GetChapter("nope", 3, translation)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestRepository_GetVerse(t *testing.T) {
	repo := setupTestDB(t)
	seedJohn3(t, repo)

	v, err := repo.GetVerse("jean", 3, 16, translation)
	require.NoError(t, err)
	assert.Contains(t, v.Text, "tant aimé")

	byID, err := repo.GetVerseByID(v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.Text, byID.Text)

	_, err = repo.GetVerse("jean", 3, 99, translation)
	assert.ErrorIs(t, err, ErrVerseNotFound)

	_, err = repo.GetVerseByID("missing")
	assert.ErrorIs(t, err, ErrVerseNotFound)
}

func TestRepository_SaveVerses_Upserts(t *testing.T) {
	repo := setupTestDB(t)
	john := seedJohn3(t, repo)

	original, err := repo.GetVerse("jean", 3, 16, translation)
	require.NoError(t, err)

	n, err := repo.SaveVerses([]entities.BibleVerse{
		{BookID: john.ID, Chapter: 3, Verse: 16, TranslationID: translation, Text: "Texte corrigé."},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	updated, err := repo.GetVerse("jean", 3, 16, translation)
	require.NoError(t, err)
	assert.Equal(t, "Texte corrigé.", updated.Text)
	assert.Equal(t, original.ID, updated.ID)

	count, err := repo.CountVerses(translation)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRepository_SaveVerses_Empty(t *testing.T) {
	repo := setupTestDB(t)

	n, err := repo.SaveVerses(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_SearchVerses(t *testing.T) {
	repo := setupTestDB(t)
	seedJohn3(t, repo)

	matches, err := repo.SearchVerses("monde", translation, 10)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 16, matches[0].Verse)
	assert.Equal(t, "jean", matches[0].BookSlug)
	assert.Equal(t, "Jean", matches[0].BookName)
	assert.Equal(t, "/bible/jean/3/16", matches[0].Href)

	matches, err = repo.SearchVerses("monde", translation, 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = repo.SearchVerses("   ", translation, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
