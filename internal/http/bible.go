package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/services"
)

type BibleController struct {
	reader BibleReader
}

func NewBibleController(reader BibleReader) *BibleController {
	return &BibleController{reader: reader}
}

// GetBooks returns the canonical book list
// GET /api/bible/books
func (bc *BibleController) GetBooks(c *gin.Context) {
	books, err := bc.reader.GetBooks()
	if err != nil {
		respondInternalError(c, err, "get books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetChapter returns a chapter with entity annotations and backlinks
// GET /api/bible/:book/:chapter
func (bc *BibleController) GetChapter(c *gin.Context) {
	chapter, ok := parsePositiveParam(c, "chapter")
	if !ok {
		return
	}

	view, err := bc.reader.GetChapter(c.Param("book"), chapter)
	if err != nil {
		bc.respondReaderError(c, err, "get chapter")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetVerse returns one verse with its entities and the articles citing it
// GET /api/bible/:book/:chapter/:verse
func (bc *BibleController) GetVerse(c *gin.Context) {
	chapter, ok := parsePositiveParam(c, "chapter")
	if !ok {
		return
	}
	verse, ok := parsePositiveParam(c, "verse")
	if !ok {
		return
	}

	detail, err := bc.reader.GetVerse(c.Param("book"), chapter, verse)
	if err != nil {
		bc.respondReaderError(c, err, "get verse")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (bc *BibleController) respondReaderError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, bible.ErrBookNotFound):
		respondNotFound(c, "book")
	case errors.Is(err, services.ErrChapterOutOfRange):
		respondNotFound(c, "chapter")
	case errors.Is(err, bible.ErrVerseNotFound):
		respondNotFound(c, "verse")
	default:
		respondInternalError(c, err, context)
	}
}
