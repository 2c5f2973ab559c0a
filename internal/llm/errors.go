package llm

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure. Provider-specific error shapes are
// converted into this taxonomy exactly once, inside the provider client; the
// rest of the system only ever inspects Kind.
type Kind int

const (
	// KindUnknown covers failures with no more specific classification.
	KindUnknown Kind = iota
	// KindSchemaValidation means the model produced output that does not
	// conform to the required structure.
	KindSchemaValidation
	// KindRateLimited corresponds to an HTTP 429 from the provider.
	KindRateLimited
	// KindUnavailable corresponds to an HTTP 503 from the provider.
	KindUnavailable
	// KindNetwork covers connection resets and timeouts talking to the provider.
	KindNetwork
)

// Error is the classified failure of one generation attempt.
type Error struct {
	Kind   Kind
	Status int    // provider HTTP status, when one was observed
	Raw    string // the raw model output, for schema-validation diagnostics
	Msg    string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("llm: %s (status %d)", e.Msg, e.Status)
	}
	return "llm: " + e.Msg
}

// AsError unwraps err into a classified *Error.
func AsError(err error) (*Error, bool) {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr, true
	}
	return nil, false
}

// KindOf returns the classified kind of err, or KindUnknown.
func KindOf(err error) Kind {
	if lerr, ok := AsError(err); ok {
		return lerr.Kind
	}
	return KindUnknown
}

// Retryable reports whether a failure warrants one attempt against the
// fallback model. Only transient capacity/availability signals (429, 503)
// qualify; schema failures and network errors reproduce or are not worth the
// extra latency, so they are surfaced immediately.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindRateLimited, KindUnavailable:
		return true
	default:
		return false
	}
}
