package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// LinkIndexer rebuilds the verse links of articles.
type LinkIndexer interface {
	IndexArticleLinks(ctx context.Context, articleID string) (int, error)
	ReindexAll(ctx context.Context) (int, error)
}

// IndexArticleLinksTask rebuilds the verse links of one article after an edit.
type IndexArticleLinksTask struct {
	ArticleID string `json:"article_id"`
}

// Config returns the queue configuration for article indexing tasks.
func (t IndexArticleLinksTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "index_article_links",
		MaxAttempts: 3,
		Backoff:     10 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// IndexArticleLinksProcessor creates a processor function for IndexArticleLinksTask.
func IndexArticleLinksProcessor(indexer LinkIndexer) backlite.QueueProcessor[IndexArticleLinksTask] {
	return func(ctx context.Context, task IndexArticleLinksTask) error {
		if indexer == nil {
			return fmt.Errorf("link indexer not configured")
		}

		n, err := indexer.IndexArticleLinks(ctx, task.ArticleID)
		if err != nil {
			return fmt.Errorf("index article %s: %w", task.ArticleID, err)
		}

		log.Printf("[TASK] Indexed %d verse links for article %s", n, task.ArticleID)
		return nil
	}
}

// NewIndexArticleLinksQueue creates a backlite queue for article indexing tasks.
func NewIndexArticleLinksQueue(indexer LinkIndexer) backlite.Queue {
	return backlite.NewQueue(IndexArticleLinksProcessor(indexer))
}

// ReindexAllLinksTask rebuilds the verse links of every article.
type ReindexAllLinksTask struct{}

// Config returns the queue configuration for full reindex tasks.
func (t ReindexAllLinksTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "reindex_all_links",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   7 * 24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ReindexAllLinksProcessor creates a processor function for ReindexAllLinksTask.
func ReindexAllLinksProcessor(indexer LinkIndexer) backlite.QueueProcessor[ReindexAllLinksTask] {
	return func(ctx context.Context, task ReindexAllLinksTask) error {
		if indexer == nil {
			return fmt.Errorf("link indexer not configured")
		}

		n, err := indexer.ReindexAll(ctx)
		if err != nil {
			return fmt.Errorf("reindex links: %w", err)
		}

		log.Printf("[TASK] Reindexed %d verse links", n)
		return nil
	}
}

// NewReindexAllLinksQueue creates a backlite queue for full reindex tasks.
func NewReindexAllLinksQueue(indexer LinkIndexer) backlite.Queue {
	return backlite.NewQueue(ReindexAllLinksProcessor(indexer))
}
