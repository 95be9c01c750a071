package telemetry

import (
	"context"

	"github.com/petasbytes/web-agent/internal/metrics"
)

// EmitTextFeatures records size features of one side of the exchange
// (role is "user" or "assistant" text visible in the conversation).
func EmitTextFeatures(ctx context.Context, role, text string) {
	if !ObserveEnabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(text)
	Emit("local_features", map[string]any{
		"turn_id":          turnID,
		"features_version": "2",
		"role":             role,
		"features": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
			"urls":  f.URLs,
		},
	})
}
