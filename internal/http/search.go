package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

// SearchController is the target of unresolved wiki links (/search?q=...).
type SearchController struct {
	verses        VerseSearcher
	articles      ArticleSearcher
	translationID string
}

func NewSearchController(verses VerseSearcher, articles ArticleSearcher, translationID string) *SearchController {
	return &SearchController{
		verses:        verses,
		articles:      articles,
		translationID: translationID,
	}
}

type SearchResponse struct {
	Query      string                 `json:"query"`
	Suggestion *wikilink.Link         `json:"suggestion,omitempty"`
	Verses     []bible.VerseMatch     `json:"verses"`
	Articles   []entities.WikiArticle `json:"articles"`
}

// Search looks the query up as a reference, in verse text and in article titles
// GET /search?q=
func (sc *SearchController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, "q is required")
		return
	}
	limit := parseLimit(c, 20, 100)

	resp := SearchResponse{
		Query:    query,
		Verses:   []bible.VerseMatch{},
		Articles: []entities.WikiArticle{},
	}

	if link := wikilink.Resolve(query); link.Kind != wikilink.KindUnresolved {
		resp.Suggestion = &link
	}

	verses, err := sc.verses.SearchVerses(query, sc.translationID, limit)
	if err != nil {
		respondInternalError(c, err, "search verses")
		return
	}
	if verses != nil {
		resp.Verses = verses
	}

	found, err := sc.articles.SearchArticles(query, limit)
	if err != nil {
		respondInternalError(c, err, "search articles")
		return
	}
	if found != nil {
		resp.Articles = found
	}

	c.JSON(http.StatusOK, resp)
}
