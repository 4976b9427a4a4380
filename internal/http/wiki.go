package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scriptorium-fr/scriptorium/internal/database/articles"
	"github.com/scriptorium-fr/scriptorium/internal/services"
)

type WikiController struct {
	wiki WikiEditor
}

func NewWikiController(wiki WikiEditor) *WikiController {
	return &WikiController{wiki: wiki}
}

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Comment string `json:"comment"`
}

type UpdateArticleRequest struct {
	Content     string `json:"content" binding:"required"`
	Comment     string `json:"comment"`
	IsMinorEdit bool   `json:"is_minor_edit"`
}

// ListRecent returns the most recently updated articles
// GET /api/wiki
func (wc *WikiController) ListRecent(c *gin.Context) {
	list, err := wc.wiki.ListRecent(parseLimit(c, 20, 100))
	if err != nil {
		respondInternalError(c, err, "list articles")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetArticle returns an article with its rendered HTML and references
// GET /api/wiki/:slug
func (wc *WikiController) GetArticle(c *gin.Context) {
	view, err := wc.wiki.GetRenderedArticle(c.Param("slug"))
	if err != nil {
		wc.respondWikiError(c, err, "get article")
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateArticle creates an article and its first revision
// POST /api/wiki
func (wc *WikiController) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title and content are required")
		return
	}

	article, revision, err := wc.wiki.CreateArticle(c.Request.Context(), services.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Comment: req.Comment,
	})
	if err != nil {
		wc.respondWikiError(c, err, "create article")
		return
	}

	respondCreated(c, gin.H{
		"article":  article,
		"revision": revision,
	})
}

// UpdateArticle stores a new revision. Identical content is not stored again.
// PUT /api/wiki/:slug
func (wc *WikiController) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "content is required")
		return
	}

	revision, created, err := wc.wiki.UpdateArticle(c.Request.Context(), c.Param("slug"), services.ArticleInput{
		Content:     req.Content,
		Comment:     req.Comment,
		IsMinorEdit: req.IsMinorEdit,
	})
	if err != nil {
		wc.respondWikiError(c, err, "update article")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"revision": revision,
		"created":  created,
	})
}

// GetRevisions returns the revision history, newest first
// GET /api/wiki/:slug/revisions
func (wc *WikiController) GetRevisions(c *gin.Context) {
	revisions, err := wc.wiki.GetRevisions(c.Param("slug"))
	if err != nil {
		wc.respondWikiError(c, err, "get revisions")
		return
	}
	c.JSON(http.StatusOK, revisions)
}

func (wc *WikiController) respondWikiError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, articles.ErrArticleNotFound):
		respondNotFound(c, "article")
	case errors.Is(err, articles.ErrSlugTaken):
		respondConflict(c, "an article with this title already exists", "slug_taken")
	case errors.Is(err, articles.ErrInvalidTitle):
		respondBadRequest(c, "title must contain at least one letter or digit")
	case errors.Is(err, services.ErrEmptyContent):
		respondBadRequest(c, "content is required")
	default:
		respondInternalError(c, err, context)
	}
}
