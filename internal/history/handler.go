package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/middleware"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/respond"
)

// Handler wires HTTP handlers for the saved-generation history.
type Handler struct {
	Repo HistoryRepo
}

// NewHandler constructs a Handler.
func NewHandler(repo HistoryRepo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/history", h.create)
	rg.GET("/history", h.list)
	rg.GET("/history/:id", h.get)
	rg.DELETE("/history/:id", h.remove)
}

type createRequest struct {
	ID       string          `json:"id"`
	Company  string          `json:"company"`
	JobTitle string          `json:"jobTitle"`
	Date     *time.Time      `json:"date"`
	Data     json.RawMessage `json:"data"`
	Resume   json.RawMessage `json:"resume"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request data", "")
		return
	}
	if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.JobTitle) == "" || len(req.Data) == 0 {
		respond.Error(c, http.StatusBadRequest, "Invalid request data", "")
		return
	}

	item := HistoryItem{
		ID:       strings.TrimSpace(req.ID),
		UserID:   userID,
		Company:  req.Company,
		JobTitle: req.JobTitle,
		Date:     time.Now().UTC(),
		Data:     req.Data,
		Resume:   req.Resume,
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if req.Date != nil {
		item.Date = req.Date.UTC()
	}

	if err := h.Repo.Create(c.Request.Context(), item); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to save history", "")
		return
	}
	respond.JSON(c, http.StatusCreated, item)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.OK(c, []HistoryItem{})
		return
	}

	items, err := h.Repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load history", "")
		return
	}
	respond.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusNotFound, "History item not found", "")
		return
	}

	item, err := h.Repo.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "History item not found", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load history", "")
		return
	}
	respond.OK(c, item)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to delete history item", "")
		return
	}
	respond.OK(c, gin.H{"success": true})
}
