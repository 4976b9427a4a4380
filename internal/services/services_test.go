package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptorium-fr/scriptorium/internal/database"
	"github.com/scriptorium-fr/scriptorium/internal/database/articles"
	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/database/bibleentities"
	"github.com/scriptorium-fr/scriptorium/internal/database/links"
	"github.com/scriptorium-fr/scriptorium/internal/render"
)

const translation = "crampon"

type testEnv struct {
	bible    *bible.Repository
	articles *articles.Repository
	entities *bibleentities.Repository
	links    *links.Repository
	wiki     *WikiService
	reader   *ReaderService
	importer *ImportService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewSilentDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	renderer, err := render.NewArticleRenderer(16)
	require.NoError(t, err)

	env := &testEnv{
		bible:    bible.NewRepository(db.DB),
		articles: articles.NewRepository(db.DB),
		entities: bibleentities.NewRepository(db.DB),
		links:    links.NewRepository(db.DB),
	}
	env.wiki = NewWikiService(env.articles, env.links, renderer)
	env.reader = NewReaderService(env.bible, env.entities, env.links, translation)
	env.importer = NewImportService(env.bible, env.entities)
	return env
}

type fakeQueue struct {
	enqueued []string
	err      error
}

func (q *fakeQueue) EnqueueArticleIndex(articleID string) error {
	q.enqueued = append(q.enqueued, articleID)
	return q.err
}

func TestVerseLinksFor(t *testing.T) {
	rows := VerseLinksFor("[[Jean 3:16]] [[Pierre]] [[Jean 3:16]] [[ Jean 3:16 ]] [[Psaumes 23]] [[Jean 3:16-18]]")
	require.Len(t, rows, 2)

	assert.Equal(t, "verse", rows[0].Kind)
	assert.Equal(t, "jean", rows[0].BookSlug)
	assert.Equal(t, 3, rows[0].Chapter)
	require.NotNil(t, rows[0].Verse)
	assert.Equal(t, 16, *rows[0].Verse)

	assert.Equal(t, "chapter", rows[1].Kind)
	assert.Nil(t, rows[1].Verse)

	assert.Empty(t, VerseLinksFor("pas de lien"))
}

func TestWikiService_CreateArticle_IndexesSynchronously(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, _, err := env.wiki.CreateArticle(ctx, ArticleInput{
		Title:   "Nicodème",
		Content: "Il vint de nuit, voir [[Jean 3:1]] et [[Jean 19:39]].",
	})
	require.NoError(t, err)

	rows, err := env.links.GetArticleLinks(article.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWikiService_CreateArticle_EmptyContent(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.wiki.CreateArticle(context.Background(), ArticleInput{Title: "Vide", Content: "  "})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestWikiService_UsesQueueWhenSet(t *testing.T) {
	env := setupTestEnv(t)
	queue := &fakeQueue{}
	env.wiki.SetIndexQueue(queue)

	article, _, err := env.wiki.CreateArticle(context.Background(), ArticleInput{Title: "Amour", Content: "[[1 Corinthiens 13]]"})
	require.NoError(t, err)

	assert.Equal(t, []string{article.ID}, queue.enqueued)
	rows, err := env.links.GetArticleLinks(article.ID)
	require.NoError(t, err)
	assert.Empty(t, rows, "indexing is left to the queue")
}

func TestWikiService_FallsBackWhenQueueFails(t *testing.T) {
	env := setupTestEnv(t)
	env.wiki.SetIndexQueue(&fakeQueue{err: errors.New("queue down")})

	article, _, err := env.wiki.CreateArticle(context.Background(), ArticleInput{Title: "Amour", Content: "[[1 Corinthiens 13]]"})
	require.NoError(t, err)

	rows, err := env.links.GetArticleLinks(article.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1-corinthiens", rows[0].BookSlug)
}

func TestWikiService_UpdateArticle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	queue := &fakeQueue{}
	env.wiki.SetIndexQueue(queue)

	_, _, err := env.wiki.CreateArticle(ctx, ArticleInput{Title: "Élie", Content: "v1"})
	require.NoError(t, err)

	_, created, err := env.wiki.UpdateArticle(ctx, "elie", ArticleInput{Content: "v1"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, queue.enqueued, 1)

	_, created, err = env.wiki.UpdateArticle(ctx, "elie", ArticleInput{Content: "v2 [[1 Rois 17:1]]", IsMinorEdit: true})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, queue.enqueued, 2)

	revisions, err := env.wiki.GetRevisions("elie")
	require.NoError(t, err)
	assert.Len(t, revisions, 2)

	_, _, err = env.wiki.UpdateArticle(ctx, "absent", ArticleInput{Content: "x"})
	assert.ErrorIs(t, err, articles.ErrArticleNotFound)
}

func TestWikiService_GetRenderedArticle(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.wiki.CreateArticle(context.Background(), ArticleInput{
		Title:   "Ponce Pilate",
		Content: "Préfet de Judée, voir [[Matthieu 27:2]] et [[Hérode]].",
	})
	require.NoError(t, err)

	view, err := env.wiki.GetRenderedArticle("ponce-pilate")
	require.NoError(t, err)

	assert.Equal(t, "Ponce Pilate", view.Article.Title)
	assert.Contains(t, view.HTML, `<a href="/bible/matthieu/27/2" class="wiki-link wiki-link-verse">Matthieu 27:2</a>`)
	assert.Contains(t, view.HTML, `<a href="/wiki/herode" class="wiki-link wiki-link-article">Hérode</a>`)
	require.Len(t, view.References, 2)
	assert.Equal(t, "/bible/matthieu/27/2", view.References[0].Href)

	recent, err := env.wiki.ListRecent(10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestWikiService_ReindexAll(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	env.wiki.SetIndexQueue(&fakeQueue{})

	_, _, err := env.wiki.CreateArticle(ctx, ArticleInput{Title: "A", Content: "[[Jean 1:1]] [[Jean 1:2]]"})
	require.NoError(t, err)
	_, _, err = env.wiki.CreateArticle(ctx, ArticleInput{Title: "B", Content: "[[Genèse 1]]"})
	require.NoError(t, err)

	total, err := env.wiki.ReindexAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	backlinks, err := env.links.GetBacklinks("geneses", 1, 0)
	require.NoError(t, err)
	require.Len(t, backlinks, 1)
	assert.Equal(t, "B", backlinks[0].ArticleTitle)
}

func TestWikiService_ReindexAll_Cancelled(t *testing.T) {
	env := setupTestEnv(t)
	env.wiki.SetIndexQueue(&fakeQueue{})
	_, _, err := env.wiki.CreateArticle(context.Background(), ArticleInput{Title: "A", Content: "[[Jean 1:1]]"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = env.wiki.ReindexAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func importJohn(t *testing.T, env *testEnv) {
	t.Helper()
	result, err := env.importer.ImportVerses([]VerseInput{
		{OSISBook: "John", Chapter: 19, Verse: 1, Text: "Alors Pilate prit Jésus et le fit flageller."},
		{OSISBook: "John", Chapter: 19, Verse: 4, Text: "Pilate sortit de nouveau."},
		{OSISBook: "John", Chapter: 19, Verse: 5, Text: "Jésus sortit donc."},
		{OSISBook: "Unknown", Chapter: 1, Verse: 1, Text: "x"},
		{OSISBook: "John", Chapter: 99, Verse: 1, Text: "x"},
		{OSISBook: "John", Chapter: 1, Verse: 1, Text: "  "},
	}, translation)
	require.NoError(t, err)
	require.Equal(t, 3, result.VersesImported)
	require.Equal(t, 3, result.VersesSkipped)
}

func TestImportService_ImportEntities(t *testing.T) {
	env := setupTestEnv(t)
	importJohn(t, env)

	result, err := env.importer.ImportEntities([]EntityInput{
		{Name: "Ponce Pilate", Type: "person", Aliases: []string{"Pilate"}, Verses: []string{"Jean 19:1", "Jean 19:4", "Jean 19", "Jean 19:40"}},
		{Name: "Jésus", Type: "person", Summary: " Le Christ ", Verses: []string{"Jean 19:1", "Jean 19:5"}},
		{Name: "Nulle part", Type: "city"},
	}, translation)
	require.NoError(t, err)

	assert.Equal(t, 2, result.EntitiesCreated)
	assert.Equal(t, 1, result.EntitiesFailed)
	assert.Equal(t, 4, result.AttachmentsCreated)
	assert.Equal(t, 2, result.AttachmentsFailed)

	jesus, err := env.entities.GetEntityBySlug("jesus")
	require.NoError(t, err)
	require.NotNil(t, jesus.Summary)
	assert.Equal(t, "Le Christ", *jesus.Summary)

	again, err := env.importer.ImportEntities([]EntityInput{
		{Name: "Ponce Pilate", Type: "person", Aliases: []string{"Pilate", "le gouverneur"}},
	}, translation)
	require.NoError(t, err)
	assert.Equal(t, 1, again.EntitiesUpdated)

	pilate, err := env.entities.GetEntityBySlug("ponce-pilate")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pilate", "le gouverneur"}, pilate.Aliases)
}

func TestReaderService_GetChapter(t *testing.T) {
	env := setupTestEnv(t)
	importJohn(t, env)
	_, err := env.importer.ImportEntities([]EntityInput{
		{Name: "Ponce Pilate", Type: "person", Aliases: []string{"Pilate"}, Verses: []string{"Jean 19:1"}},
		{Name: "Jésus", Type: "person", Verses: []string{"Jean 19:5"}},
	}, translation)
	require.NoError(t, err)

	chapter, err := env.reader.GetChapter("jean", 19)
	require.NoError(t, err)

	assert.Equal(t, "Jean", chapter.Book.Name)
	require.Len(t, chapter.Verses, 3)
	assert.Len(t, chapter.Entities, 2)

	// Pilate is attached to 19:1 only but is recognized across the chapter.
	v4 := chapter.Verses[1]
	assert.Equal(t, 4, v4.Verse)
	require.True(t, v4.Segments[0].IsEntity())
	assert.Equal(t, "Pilate", v4.Segments[0].Text)
	assert.Contains(t, v4.HTML, `data-entity-slug="ponce-pilate"`)

	for _, v := range chapter.Verses {
		assert.Equal(t, v.Text, v.Segments.Text())
	}
}

func TestReaderService_GetChapter_Errors(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.reader.GetChapter("jean", 22)
	assert.ErrorIs(t, err, ErrChapterOutOfRange)

	_, err = env.reader.GetChapter("jean", 0)
	assert.ErrorIs(t, err, ErrChapterOutOfRange)

	_, err = env.reader.GetChapter("nope", 1)
	assert.ErrorIs(t, err, bible.ErrBookNotFound)

	empty, err := env.reader.GetChapter("jean", 1)
	require.NoError(t, err)
	assert.Empty(t, empty.Verses)
}

func TestReaderService_GetVerse(t *testing.T) {
	env := setupTestEnv(t)
	importJohn(t, env)
	_, err := env.importer.ImportEntities([]EntityInput{
		{Name: "Jésus", Type: "person", Verses: []string{"Jean 19:5"}},
	}, translation)
	require.NoError(t, err)
	_, _, err = env.wiki.CreateArticle(context.Background(), ArticleInput{Title: "Ecce homo", Content: "[[Jean 19:5]]"})
	require.NoError(t, err)

	detail, err := env.reader.GetVerse("jean", 19, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, detail.Verse.Verse)
	require.Len(t, detail.Entities, 1)
	require.Len(t, detail.Backlinks, 1)
	assert.Equal(t, "ecce-homo", detail.Backlinks[0].ArticleSlug)
	assert.True(t, detail.Verse.Segments[0].IsEntity())

	_, err = env.reader.GetVerse("jean", 19, 99)
	assert.ErrorIs(t, err, bible.ErrVerseNotFound)
}
