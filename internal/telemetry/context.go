package telemetry

import "context"

type turnIDKey struct{}

// WithTurnID tags ctx with the turn identifier so every event emitted while
// processing that turn can be correlated. A nil ctx starts from Background.
func WithTurnID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, turnIDKey{}, id)
}

// TurnIDFromContext reports the turn ID carried by ctx. Empty or missing
// values count as absent.
func TurnIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(turnIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
