package telemetry_test

import (
	"context"
	"testing"

	"github.com/petasbytes/web-agent/internal/telemetry"
)

func TestTurnID_RoundTrip(t *testing.T) {
	ctx := telemetry.WithTurnID(context.Background(), "turn-42")
	got, ok := telemetry.TurnIDFromContext(ctx)
	if !ok || got != "turn-42" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestTurnID_MissingOrEmpty(t *testing.T) {
	if _, ok := telemetry.TurnIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for missing turn ID")
	}
	ctx := telemetry.WithTurnID(context.Background(), "")
	if _, ok := telemetry.TurnIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty turn ID")
	}
}

func TestTurnID_NilContext(t *testing.T) {
	//nolint:staticcheck // exercising the nil-context guard on purpose
	ctx := telemetry.WithTurnID(nil, "turn-1")
	got, ok := telemetry.TurnIDFromContext(ctx)
	if !ok || got != "turn-1" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
