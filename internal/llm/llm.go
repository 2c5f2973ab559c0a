package llm

import (
	"context"
	"encoding/json"

	"github.com/google/generative-ai-go/genai"
)

// GeneratorClient abstracts a structured-generation LLM provider. The returned
// payload is guaranteed to be valid JSON conforming to the request schema;
// every failure is an *Error carrying its classified kind.
type GeneratorClient interface {
	GenerateObject(ctx context.Context, req Request) (json.RawMessage, error)
}

// Request captures one structured-generation call.
type Request struct {
	Model  string
	Schema *genai.Schema
	System string
	Prompt string
}
