package links

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptorium-fr/scriptorium/internal/database"
	"github.com/scriptorium-fr/scriptorium/internal/database/articles"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *articles.Repository) {
	t.Helper()
	db, err := database.NewSilentDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB), articles.NewRepository(db.DB)
}

func intPtr(i int) *int { return &i }

func TestRepository_ReplaceArticleLinks(t *testing.T) {
	repo, articlesRepo := setupTestDB(t)
	article, _, err := articlesRepo.CreateArticle("Nicodème", "x", "", nil)
	require.NoError(t, err)

	err = repo.ReplaceArticleLinks(article.ID, []entities.VerseLink{
		{Reference: "Jean 3:16", Kind: "verse", BookSlug: "jean", Chapter: 3, Verse: intPtr(16)},
		{Reference: "Jean 3", Kind: "chapter", BookSlug: "jean", Chapter: 3},
	})
	require.NoError(t, err)

	rows, err := repo.GetArticleLinks(article.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, article.ID, rows[0].ArticleID)

	err = repo.ReplaceArticleLinks(article.ID, []entities.VerseLink{
		{Reference: "Jean 19:39", Kind: "verse", BookSlug: "jean", Chapter: 19, Verse: intPtr(39)},
	})
	require.NoError(t, err)

	rows, err = repo.GetArticleLinks(article.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jean 19:39", rows[0].Reference)

	require.NoError(t, repo.ReplaceArticleLinks(article.ID, nil))
	count, err := repo.CountLinks()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRepository_GetBacklinks(t *testing.T) {
	repo, articlesRepo := setupTestDB(t)
	nicodeme, _, err := articlesRepo.CreateArticle("Nicodème", "x", "", nil)
	require.NoError(t, err)
	amour, _, err := articlesRepo.CreateArticle("Amour", "y", "", nil)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceArticleLinks(nicodeme.ID, []entities.VerseLink{
		{Reference: "Jean 3:16", Kind: "verse", BookSlug: "jean", Chapter: 3, Verse: intPtr(16)},
	}))
	require.NoError(t, repo.ReplaceArticleLinks(amour.ID, []entities.VerseLink{
		{Reference: "Jean 3", Kind: "chapter", BookSlug: "jean", Chapter: 3},
		{Reference: "Jean 4:1", Kind: "verse", BookSlug: "jean", Chapter: 4, Verse: intPtr(1)},
	}))

	verse, err := repo.GetBacklinks("jean", 3, 16)
	require.NoError(t, err)
	require.Len(t, verse, 2)
	assert.Equal(t, "Amour", verse[0].ArticleTitle)
	assert.Equal(t, "nicodeme", verse[1].ArticleSlug)

	chapter, err := repo.GetBacklinks("jean", 3, 0)
	require.NoError(t, err)
	require.Len(t, chapter, 1)
	assert.Equal(t, "Jean 3", chapter[0].Reference)

	none, err := repo.GetBacklinks("jean", 5, 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
