package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/project-board/internal/todos/domain"
	"github.com/GoSim-25-26J-441/project-board/internal/todos/store"
	"github.com/gin-gonic/gin"
)

// Handler bundles the dependencies for todo HTTP endpoints.
type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Register attaches todo routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.GET("", h.list)

	mutate := rg.Group("", guards...)
	mutate.POST("", h.create)
	mutate.DELETE("/:id", h.delete)
}

type createReq struct {
	Content string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrEmptyContent.Error()})
		return
	}

	id := h.store.Add(req.Content)
	log.Printf("[todos] added id=%s", id)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "todo": domain.Todo{ID: id, Content: req.Content}})
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "todos": h.store.List()})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": domain.ErrNotFound.Error()})
		return
	}
	log.Printf("[todos] deleted id=%s", id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
