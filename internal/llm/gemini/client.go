package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/Rithb898/AI-Application-Assistant/internal/llm"
)

const defaultTimeout = 30 * time.Second

// Client implements llm.GeneratorClient using the Gemini API with JSON
// response schemas.
type Client struct {
	genai       *genai.Client
	timeout     time.Duration
	temperature float32
}

// NewClient constructs a Gemini client. The timeout bounds each generation
// call; zero uses the 30s default.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		genai:       client,
		timeout:     timeout,
		temperature: 0.7,
	}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() {
	c.genai.Close()
}

// GenerateObject runs one structured-generation call and validates the model
// output against the request schema. All failures come back as *llm.Error.
func (c *Client) GenerateObject(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	if strings.TrimSpace(req.Model) == "" {
		return nil, &llm.Error{Kind: llm.KindUnknown, Msg: "model identifier is required"}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.genai.GenerativeModel(req.Model)
	model.SetTemperature(c.temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = req.Schema
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, classify(err)
	}

	raw := extractText(resp)
	if strings.TrimSpace(raw) == "" {
		return nil, &llm.Error{Kind: llm.KindSchemaValidation, Msg: "model returned no content"}
	}
	if err := llm.ValidateRaw(req.Schema, []byte(raw)); err != nil {
		return nil, &llm.Error{Kind: llm.KindSchemaValidation, Raw: raw, Msg: err.Error()}
	}
	return json.RawMessage(raw), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// classify converts provider error shapes into the llm taxonomy. This is the
// single place where googleapi / transport errors are inspected.
func classify(err error) *llm.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &llm.Error{Kind: llm.KindNetwork, Msg: "request timed out"}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return &llm.Error{Kind: llm.KindRateLimited, Status: gerr.Code, Msg: gerr.Message}
		case http.StatusServiceUnavailable:
			return &llm.Error{Kind: llm.KindUnavailable, Status: gerr.Code, Msg: gerr.Message}
		default:
			return &llm.Error{Kind: llm.KindUnknown, Status: gerr.Code, Msg: gerr.Message}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &llm.Error{Kind: llm.KindNetwork, Msg: err.Error()}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof") {
		return &llm.Error{Kind: llm.KindNetwork, Msg: err.Error()}
	}

	return &llm.Error{Kind: llm.KindUnknown, Msg: err.Error()}
}
