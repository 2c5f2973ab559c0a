package resumes

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rithb898/AI-Application-Assistant/internal/extract"
	"github.com/Rithb898/AI-Application-Assistant/internal/llm"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/middleware"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/respond"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/storage/object"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/telemetry"
)

const (
	maxUploadBytes = 10 << 20
	// Room for multipart boundaries and form fields so a file of exactly
	// maxUploadBytes still fits in the request body.
	maxRequestBytes = maxUploadBytes + (1 << 19)
)

// Handler wires HTTP handlers for resume parsing and the stored resume.
type Handler struct {
	Invoker llm.Invoker
	Repo    ResumesRepo
	Store   object.ObjectStore
}

// NewHandler constructs a Handler. The invoker carries the parse-specific
// primary/fallback model pair.
func NewHandler(invoker llm.Invoker, repo ResumesRepo, store object.ObjectStore) *Handler {
	return &Handler{Invoker: invoker, Repo: repo, Store: store}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-resume", h.parseResume)
	rg.GET("/resumes/current", h.getCurrent)
	rg.PUT("/resumes/current", h.putCurrent)
}

func (h *Handler) parseResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10MB.", "")
			return
		}
		respond.Error(c, http.StatusBadRequest, "No file uploaded", "")
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10MB.", "")
		return
	}
	if !isPDF(header) {
		respond.Error(c, http.StatusBadRequest, "Invalid file type. Please upload a PDF.", "")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "PDF parsing failed", "")
		return
	}
	// The declared content type is caller-controlled; verify the payload too.
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		respond.Error(c, http.StatusBadRequest, "Invalid file type. Please upload a PDF.", "")
		return
	}

	text, err := extract.PDFText(c.Request.Context(), data)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "PDF parsing failed", "")
		return
	}

	raw, err := h.Invoker.Generate(c.Request.Context(), llm.Request{
		Schema: profileSchema(),
		System: parseSystemPrompt,
		Prompt: parsePrompt(text),
	})
	if err != nil {
		respondParseError(c, err)
		return
	}

	if userID := middleware.UserIDFromContext(c); userID != "" {
		h.persist(c, userID, header.Filename, data, raw)
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// persist saves the uploaded PDF and parsed profile for an identified caller.
// Failures are logged but never fail the parse response.
func (h *Handler) persist(c *gin.Context, userID, fileName string, pdfData []byte, profile json.RawMessage) {
	ctx := c.Request.Context()

	var fileKey string
	if h.Store != nil {
		key, _, _, err := h.Store.Save(ctx, userID, fileName, bytes.NewReader(pdfData))
		if err != nil {
			telemetry.Error("resume.store.failed", map[string]any{"error": err.Error()})
		} else {
			fileKey = key
		}
	}

	err := h.Repo.Save(ctx, StoredResume{
		UserID:    userID,
		Profile:   profile,
		FileKey:   fileKey,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		telemetry.Error("resume.save.failed", map[string]any{"error": err.Error()})
	}
}

func (h *Handler) getCurrent(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusNotFound, "Resume not found", "")
		return
	}

	resume, err := h.Repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load resume", "")
		return
	}
	c.Data(http.StatusOK, "application/json", resume.Profile)
}

func (h *Handler) putCurrent(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		respond.Error(c, http.StatusBadRequest, "Invalid resume data. Please upload a valid resume.", "")
		return
	}

	resume := StoredResume{
		UserID:    userID,
		Profile:   body,
		UpdatedAt: time.Now().UTC(),
	}
	if prev, err := h.Repo.GetByUser(c.Request.Context(), userID); err == nil {
		resume.FileKey = prev.FileKey
	}
	if err := h.Repo.Save(c.Request.Context(), resume); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to save resume", "")
		return
	}
	respond.OK(c, gin.H{"success": true})
}

// respondParseError maps the llm error taxonomy onto the parse endpoint's
// status codes.
func respondParseError(c *gin.Context, err error) {
	switch llm.KindOf(err) {
	case llm.KindSchemaValidation:
		respond.Error(c, http.StatusUnprocessableEntity, "Could not extract a valid resume profile", "")
	case llm.KindRateLimited:
		respond.Error(c, http.StatusTooManyRequests, "Service temporarily unavailable due to high demand. Please try again later.", "")
	case llm.KindUnavailable, llm.KindNetwork:
		respond.Error(c, http.StatusServiceUnavailable, "Connection error. Please try again later.", "")
	default:
		respond.Error(c, http.StatusInternalServerError, "PDF parsing failed", "")
	}
}

func isPDF(header *multipart.FileHeader) bool {
	ct := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct == "application/pdf"
}
