package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scriptorium-fr/scriptorium/internal/annotate"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
	"github.com/scriptorium-fr/scriptorium/internal/render"
	"github.com/scriptorium-fr/scriptorium/internal/wikilink"
)

// ToolsController exposes the reference linker and the entity annotator
// on arbitrary text, for editor previews.
type ToolsController struct {
	store EntityStore
}

func NewToolsController(store EntityStore) *ToolsController {
	return &ToolsController{store: store}
}

type ContentRequest struct {
	Content string `json:"content"`
}

type AnnotateRequest struct {
	Text     string                 `json:"text"`
	Entities []entities.BibleEntity `json:"entities"`
}

// Linkify replaces [[...]] references with HTML links
// POST /api/tools/linkify
func (tc *ToolsController) Linkify(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"html":   wikilink.Linkify(req.Content),
		"tokens": wikilink.Tokenize(req.Content),
	})
}

// References lists the references of a text and how each one resolves
// POST /api/tools/references
func (tc *ToolsController) References(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	refs := wikilink.ExtractReferences(req.Content)
	resolved := make([]wikilink.Link, 0, len(refs))
	for _, ref := range refs {
		resolved = append(resolved, wikilink.Resolve(ref))
	}

	c.JSON(http.StatusOK, gin.H{
		"references": refs,
		"links":      resolved,
	})
}

// Annotate segments a text by entity mentions. Without entities in the
// request, every stored entity is used.
// POST /api/tools/annotate
func (tc *ToolsController) Annotate(c *gin.Context) {
	var req AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	list := req.Entities
	if len(list) == 0 && tc.store != nil {
		stored, err := tc.store.ListEntities("")
		if err != nil {
			respondInternalError(c, err, "list entities")
			return
		}
		list = stored
	}

	segments := annotate.Annotate(req.Text, list)
	c.JSON(http.StatusOK, gin.H{
		"segments": segments,
		"html":     render.RenderSegments(segments),
	})
}
