package generation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rithb898/AI-Application-Assistant/internal/llm"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/respond"
)

// Handler wires HTTP handlers for application-material generation.
type Handler struct {
	Invoker         llm.Invoker
	Client          llm.GeneratorClient
	RegenerateModel string
}

// NewHandler constructs a Handler. The invoker carries the primary/fallback
// model pair for full generation; regeneration always runs a single model.
func NewHandler(invoker llm.Invoker, client llm.GeneratorClient, regenerateModel string) *Handler {
	return &Handler{Invoker: invoker, Client: client, RegenerateModel: regenerateModel}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.POST("/regenerate", h.regenerate)
}

func (h *Handler) generate(c *gin.Context) {
	req := Request{
		JobTitle:       strings.TrimSpace(c.PostForm("jobTitle")),
		Company:        strings.TrimSpace(c.PostForm("company")),
		TechStack:      strings.TrimSpace(c.PostForm("techStack")),
		Description:    strings.TrimSpace(c.PostForm("description")),
		CompanyDetails: strings.TrimSpace(c.PostForm("companyDetails")),
		ResumeText:     strings.TrimSpace(c.PostForm("parsedResume")),
	}
	if req.JobTitle == "" || req.Company == "" || req.Description == "" {
		respond.Error(c, http.StatusBadRequest, "Missing required fields", "")
		return
	}
	if req.ResumeText != "" && !json.Valid([]byte(req.ResumeText)) {
		respond.Error(c, http.StatusBadRequest, "Invalid resume data. Please upload a valid resume.", "")
		return
	}

	raw, err := h.Invoker.Generate(c.Request.Context(), llm.Request{
		Schema: resultSchema(),
		System: generateSystemPrompt,
		Prompt: generatePrompt(req),
	})
	if err != nil {
		respondGenerateError(c, err)
		return
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "Could not generate a valid application response", excerpt(string(raw)))
		return
	}
	respond.OK(c, result)
}

type regenerateRequest struct {
	Field  string          `json:"field"`
	Data   *RegenerateData `json:"data"`
	Resume json.RawMessage `json:"parsedResume"`
}

func (h *Handler) regenerate(c *gin.Context) {
	var req regenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request data", "")
		return
	}
	if strings.TrimSpace(req.Field) == "" || req.Data == nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request data", "")
		return
	}

	prompt, ok := buildPrompt(req.Field, *req.Data, string(req.Resume))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "Invalid field provided", "")
		return
	}

	raw, err := h.Client.GenerateObject(c.Request.Context(), llm.Request{
		Model:  h.RegenerateModel,
		Schema: regenerateSchema(),
		System: regenerateSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Something went wrong.", "")
		return
	}

	var out struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Something went wrong.", "")
		return
	}
	respond.OK(c, gin.H{"content": out.Content})
}

// respondGenerateError maps the llm error taxonomy onto the generate
// endpoint's status codes and user-facing messages.
func respondGenerateError(c *gin.Context, err error) {
	lerr, ok := llm.AsError(err)
	if !ok {
		respond.Error(c, http.StatusInternalServerError, "Failed to generate job application response", err.Error())
		return
	}
	switch lerr.Kind {
	case llm.KindSchemaValidation:
		respond.Error(c, http.StatusUnprocessableEntity, "Could not generate a valid application response", excerpt(lerr.Raw))
	case llm.KindRateLimited:
		respond.Error(c, http.StatusTooManyRequests, "Service temporarily unavailable due to high demand. Please try again later.", "")
	case llm.KindUnavailable, llm.KindNetwork:
		respond.Error(c, http.StatusServiceUnavailable, "Connection error. Please try again later.", "")
	default:
		respond.Error(c, http.StatusInternalServerError, "Failed to generate job application response", lerr.Msg)
	}
}

const maxExcerptLen = 500

// excerpt truncates raw model output for error details so response bodies stay
// bounded regardless of what the model produced.
func excerpt(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxExcerptLen {
		return raw[:maxExcerptLen] + "..."
	}
	return raw
}
