package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

type stubClient struct {
	calls     []Request
	responses []stubResponse
}

type stubResponse struct {
	raw json.RawMessage
	err error
}

func (s *stubClient) GenerateObject(ctx context.Context, req Request) (json.RawMessage, error) {
	s.calls = append(s.calls, req)
	if len(s.responses) == 0 {
		return nil, errors.New("stub exhausted")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp.raw, resp.err
}

func TestGeneratePrimarySuccessSkipsFallback(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{raw: json.RawMessage(`{"ok":true}`)},
	}}
	iv := Invoker{Client: client, Primary: "model-a", Fallback: "model-b"}

	raw, err := iv.Generate(context.Background(), Request{Prompt: "p"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(client.calls))
	}
	if client.calls[0].Model != "model-a" {
		t.Fatalf("expected primary model, got %s", client.calls[0].Model)
	}
}

func TestGenerateRateLimitedTriggersOneFallback(t *testing.T) {
	schema := &genai.Schema{Type: genai.TypeObject}
	client := &stubClient{responses: []stubResponse{
		{err: &Error{Kind: KindRateLimited, Status: 429, Msg: "rate limited"}},
		{raw: json.RawMessage(`{"ok":true}`)},
	}}
	iv := Invoker{Client: client, Primary: "model-a", Fallback: "model-b"}

	raw, err := iv.Generate(context.Background(), Request{Schema: schema, System: "sys", Prompt: "p"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
	if len(client.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(client.calls))
	}
	if client.calls[1].Model != "model-b" {
		t.Fatalf("expected fallback model, got %s", client.calls[1].Model)
	}
	// The fallback attempt reuses the identical schema and prompts.
	if client.calls[1].Schema != schema {
		t.Fatalf("fallback schema differs from primary")
	}
	if client.calls[1].System != "sys" || client.calls[1].Prompt != "p" {
		t.Fatalf("fallback prompts differ from primary")
	}
}

func TestGenerateUnavailableTriggersFallback(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &Error{Kind: KindUnavailable, Status: 503, Msg: "overloaded"}},
		{raw: json.RawMessage(`{}`)},
	}}
	iv := Invoker{Client: client, Primary: "model-a", Fallback: "model-b"}

	if _, err := iv.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(client.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(client.calls))
	}
}

func TestGenerateSchemaFailureDoesNotFallBack(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &Error{Kind: KindSchemaValidation, Msg: "missing property"}},
	}}
	iv := Invoker{Client: client, Primary: "model-a", Fallback: "model-b"}

	_, err := iv.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if KindOf(err) != KindSchemaValidation {
		t.Fatalf("expected schema validation kind, got %v", KindOf(err))
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(client.calls))
	}
}

func TestGenerateNetworkFailureDoesNotFallBack(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &Error{Kind: KindNetwork, Msg: "connection reset"}},
	}}
	iv := Invoker{Client: client, Primary: "model-a", Fallback: "model-b"}

	_, err := iv.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(client.calls))
	}
}

func TestGenerateFallbackFailureIsFinal(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &Error{Kind: KindRateLimited, Status: 429, Msg: "rate limited"}},
		{err: &Error{Kind: KindUnavailable, Status: 503, Msg: "overloaded"}},
	}}
	iv := Invoker{Client: client, Primary: "model-a", Fallback: "model-b"}

	_, err := iv.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatalf("expected error")
	}
	// The fallback's own retryable failure must not cause a third attempt.
	if len(client.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(client.calls))
	}
	if KindOf(err) != KindUnavailable {
		t.Fatalf("expected fallback error surfaced, got %v", KindOf(err))
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KindRateLimited, true},
		{KindUnavailable, true},
		{KindSchemaValidation, false},
		{KindNetwork, false},
		{KindUnknown, false},
	}
	for _, tc := range cases {
		if got := Retryable(&Error{Kind: tc.kind}); got != tc.want {
			t.Errorf("Retryable(kind=%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
	if Retryable(errors.New("plain")) {
		t.Errorf("plain error should not be retryable")
	}
}
