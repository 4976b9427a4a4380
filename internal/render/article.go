// Package render turns wiki markup and annotated verses into HTML.
package render

import (
	"bytes"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/scriptorium-fr/scriptorium/internal/utils"
)

const DefaultCacheSize = 512

// ArticleRenderer converts article markup to HTML: GitHub-flavoured markdown
// with [[...]] references rendered as wiki anchors. Raw HTML written by authors
// is dropped. Output is cached by content hash. Safe for concurrent use.
type ArticleRenderer struct {
	md    goldmark.Markdown
	cache *lru.Cache[string, string]
}

func NewArticleRenderer(cacheSize int) (*ArticleRenderer, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, wikiLinks{}),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	return &ArticleRenderer{md: md, cache: cache}, nil
}

// Render returns the HTML for content.
func (r *ArticleRenderer) Render(content string) (string, error) {
	key := utils.ContentHash(content)
	if html, ok := r.cache.Get(key); ok {
		return html, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	html := buf.String()
	r.cache.Add(key, html)
	return html, nil
}

// CachedEntries returns the number of rendered documents held in the cache.
func (r *ArticleRenderer) CachedEntries() int {
	return r.cache.Len()
}

// Purge empties the cache.
func (r *ArticleRenderer) Purge() {
	r.cache.Purge()
}
