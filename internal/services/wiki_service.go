package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/render"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

var ErrEmptyContent = errors.New("content is required")

// ArticleInput is the user-supplied part of an article edit.
type ArticleInput struct {
	Title       string
	Content     string
	Comment     string
	AuthorID    *string
	IsMinorEdit bool
}

// ArticleView is an article ready to display.
type ArticleView struct {
	Article    entities.WikiArticle  `json:"article"`
	Revision   entities.WikiRevision `json:"revision"`
	HTML       string                `json:"html"`
	References []wikilink.Link       `json:"references"`
}

// WikiService coordinates article storage, rendering and link indexing.
type WikiService struct {
	articles ArticleStore
	links    LinkStore
	renderer *render.ArticleRenderer
	queue    ArticleIndexQueue
}

func NewWikiService(articles ArticleStore, links LinkStore, renderer *render.ArticleRenderer) *WikiService {
	return &WikiService{
		articles: articles,
		links:    links,
		renderer: renderer,
	}
}

// SetIndexQueue makes link indexing asynchronous. Without a queue, articles
// are indexed synchronously after every edit.
func (s *WikiService) SetIndexQueue(queue ArticleIndexQueue) {
	s.queue = queue
}

func (s *WikiService) CreateArticle(ctx context.Context, in ArticleInput) (*entities.WikiArticle, *entities.WikiRevision, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, nil, ErrEmptyContent
	}

	article, revision, err := s.articles.CreateArticle(in.Title, in.Content, in.Comment, in.AuthorID)
	if err != nil {
		return nil, nil, err
	}

	s.scheduleIndex(ctx, article.ID)
	return article, revision, nil
}

// UpdateArticle adds a revision to the article with the given slug. created is
// false when the content did not change.
func (s *WikiService) UpdateArticle(ctx context.Context, slug string, in ArticleInput) (*entities.WikiRevision, bool, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, false, ErrEmptyContent
	}

	article, err := s.articles.GetArticleBySlug(slug)
	if err != nil {
		return nil, false, err
	}

	revision, created, err := s.articles.AddRevision(article.ID, in.Content, in.Comment, in.IsMinorEdit, in.AuthorID)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.scheduleIndex(ctx, article.ID)
	}
	return revision, created, nil
}

func (s *WikiService) scheduleIndex(ctx context.Context, articleID string) {
	if s.queue != nil {
		err := s.queue.EnqueueArticleIndex(articleID)
		if err == nil {
			return
		}
		log.Printf("Failed to enqueue link indexing for article %s, indexing now: %v", articleID, err)
	}

	if _, err := s.IndexArticleLinks(ctx, articleID); err != nil {
		log.Printf("Failed to index links for article %s: %v", articleID, err)
	}
}

// GetRenderedArticle loads an article's current revision and renders it.
func (s *WikiService) GetRenderedArticle(slug string) (*ArticleView, error) {
	article, err := s.articles.GetArticleBySlug(slug)
	if err != nil {
		return nil, err
	}

	revision, err := s.articles.GetCurrentRevision(article)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(revision.Content)
	if err != nil {
		return nil, err
	}

	refs := wikilink.ExtractReferences(revision.Content)
	resolved := make([]wikilink.Link, 0, len(refs))
	for _, ref := range refs {
		resolved = append(resolved, wikilink.Resolve(ref))
	}

	return &ArticleView{
		Article:    *article,
		Revision:   *revision,
		HTML:       html,
		References: resolved,
	}, nil
}

func (s *WikiService) GetRevisions(slug string) ([]entities.WikiRevision, error) {
	article, err := s.articles.GetArticleBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.articles.GetRevisions(article.ID)
}

func (s *WikiService) ListRecent(limit int) ([]entities.WikiArticle, error) {
	return s.articles.GetRecentArticles(limit)
}

// IndexArticleLinks rebuilds the verse links of one article from its current
// revision and returns how many were stored.
func (s *WikiService) IndexArticleLinks(ctx context.Context, articleID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	article, err := s.articles.GetArticleByID(articleID)
	if err != nil {
		return 0, err
	}
	revision, err := s.articles.GetCurrentRevision(article)
	if err != nil {
		return 0, err
	}

	rows := VerseLinksFor(revision.Content)
	if err := s.links.ReplaceArticleLinks(article.ID, rows); err != nil {
		return 0, fmt.Errorf("failed to store links for %s: %w", article.Slug, err)
	}
	return len(rows), nil
}

// ReindexAll rebuilds the links of every article. It stops early when ctx is done.
func (s *WikiService) ReindexAll(ctx context.Context) (int, error) {
	ids, err := s.articles.GetAllArticleIDs()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, id := range ids {
		n, err := s.IndexArticleLinks(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return total, ctx.Err()
			}
			log.Printf("Failed to reindex article %s: %v", id, err)
			continue
		}
		total += n
	}

	log.Printf("Reindexed %d verse links across %d articles", total, len(ids))
	return total, nil
}

// VerseLinksFor returns one link row per chapter or verse reference in
// content. Duplicate references are stored once.
func VerseLinksFor(content string) []entities.VerseLink {
	var rows []entities.VerseLink
	seen := make(map[string]bool)
	for _, ref := range wikilink.ExtractReferences(content) {
		link := wikilink.Resolve(ref)
		if !link.Kind.IsBible() || seen[link.Href] {
			continue
		}
		seen[link.Href] = true

		row := entities.VerseLink{
			Reference: link.Reference,
			Kind:      string(link.Kind),
			BookSlug:  link.BookSlug,
			Chapter:   link.Chapter,
		}
		if link.Kind == wikilink.KindVerse {
			verse := link.Verse
			row.Verse = &verse
		}
		rows = append(rows, row)
	}
	return rows
}
