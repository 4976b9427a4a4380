package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scriptorium-fr/scriptorium/internal/database/bibleentities"
	"github.com/scriptorium-fr/scriptorium/internal/entities"
)

type EntitiesController struct {
	store EntityStore
}

func NewEntitiesController(store EntityStore) *EntitiesController {
	return &EntitiesController{store: store}
}

type CreateEntityRequest struct {
	Name       string   `json:"name" binding:"required"`
	Slug       string   `json:"slug"`
	EntityType string   `json:"entity_type" binding:"required"`
	Aliases    []string `json:"aliases"`
	Summary    *string  `json:"summary"`
}

type AttachEntityRequest struct {
	EntityID   string `json:"entity_id"`
	EntitySlug string `json:"entity_slug"`
}

// ListEntities returns entities, optionally filtered by type
// GET /api/entities?type=person
func (ec *EntitiesController) ListEntities(c *gin.Context) {
	entityType := entities.EntityType(c.Query("type"))
	if entityType != "" && !entityType.Valid() {
		respondBadRequest(c, "invalid entity type")
		return
	}

	list, err := ec.store.ListEntities(entityType)
	if err != nil {
		respondInternalError(c, err, "list entities")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetEntity returns one entity
// GET /api/entities/:slug
func (ec *EntitiesController) GetEntity(c *gin.Context) {
	entity, err := ec.store.GetEntityBySlug(c.Param("slug"))
	if err != nil {
		ec.respondEntityError(c, err, "get entity")
		return
	}
	c.JSON(http.StatusOK, entity)
}

// CreateEntity creates a person, place, concept or event
// POST /api/entities
func (ec *EntitiesController) CreateEntity(c *gin.Context) {
	var req CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name and entity_type are required")
		return
	}

	entity := &entities.BibleEntity{
		Name:       req.Name,
		Slug:       req.Slug,
		EntityType: entities.EntityType(req.EntityType),
		Aliases:    req.Aliases,
		Summary:    req.Summary,
	}
	if err := ec.store.CreateEntity(entity); err != nil {
		ec.respondEntityError(c, err, "create entity")
		return
	}
	respondCreated(c, entity)
}

// AttachToVerse links an entity to a verse and returns the verse's entities
// POST /api/verses/:id/entities
func (ec *EntitiesController) AttachToVerse(c *gin.Context) {
	var req AttachEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.EntityID == "" && req.EntitySlug == "") {
		respondBadRequest(c, "entity_id or entity_slug is required")
		return
	}

	entityID := req.EntityID
	if entityID == "" {
		entity, err := ec.store.GetEntityBySlug(req.EntitySlug)
		if err != nil {
			ec.respondEntityError(c, err, "attach entity")
			return
		}
		entityID = entity.ID
	}

	verseID := c.Param("id")
	if err := ec.store.AttachToVerse(verseID, entityID); err != nil {
		ec.respondEntityError(c, err, "attach entity")
		return
	}

	list, err := ec.store.GetEntitiesForVerse(verseID)
	if err != nil {
		respondInternalError(c, err, "get verse entities")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ec *EntitiesController) respondEntityError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, bibleentities.ErrEntityNotFound):
		respondNotFound(c, "entity")
	case errors.Is(err, bibleentities.ErrVerseNotFound):
		respondNotFound(c, "verse")
	case errors.Is(err, bibleentities.ErrEmptyName):
		respondBadRequest(c, "name is required")
	case errors.Is(err, bibleentities.ErrInvalidEntityType):
		respondBadRequest(c, "invalid entity type")
	default:
		respondInternalError(c, err, context)
	}
}
