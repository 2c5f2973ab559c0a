package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Rithb898/AI-Application-Assistant/internal/shared/metrics"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/telemetry"
)

// Invoker executes a structured-generation request against a primary model and,
// for transient provider failures only, retries once against a fallback model.
// There is no third attempt: whatever the fallback attempt produces is final.
type Invoker struct {
	Client   GeneratorClient
	Primary  string
	Fallback string
}

// Generate runs the request through the primary/fallback policy. The fallback
// attempt reuses the identical schema and prompts with only the model swapped.
func (iv Invoker) Generate(ctx context.Context, req Request) (json.RawMessage, error) {
	start := time.Now()
	req.Model = iv.Primary

	metrics.IncGenerationStarted()
	telemetry.Info("llm.generate.started", map[string]any{
		"model": req.Model,
	})

	raw, err := iv.Client.GenerateObject(ctx, req)
	if err == nil {
		iv.logCompleted(req.Model, start)
		return raw, nil
	}
	if !Retryable(err) {
		metrics.IncGenerationFailed()
		return nil, err
	}

	fields := map[string]any{
		"primary_model":  iv.Primary,
		"fallback_model": iv.Fallback,
		"primary_error":  err.Error(),
	}
	if lerr, ok := AsError(err); ok && lerr.Status > 0 {
		fields["primary_status"] = lerr.Status
	}
	metrics.IncFallbackTriggered()
	telemetry.Warn("llm.fallback.triggered", fields)

	req.Model = iv.Fallback
	raw, err = iv.Client.GenerateObject(ctx, req)
	if err != nil {
		metrics.IncGenerationFailed()
		return nil, err
	}
	iv.logCompleted(req.Model, start)
	return raw, nil
}

func (iv Invoker) logCompleted(model string, start time.Time) {
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(durationMs)
	telemetry.Info("llm.generate.completed", map[string]any{
		"model":       model,
		"duration_ms": durationMs,
	})
}
