package agent

import (
	"context"
	"errors"
	"iter"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/web-agent/internal/provider"
	"github.com/petasbytes/web-agent/internal/runner"
	"github.com/petasbytes/web-agent/memory"
	"github.com/petasbytes/web-agent/tools"
)

// errStop signals that the Stream consumer broke out of the range; it never
// escapes this package.
var errStop = errors.New("stream consumer stopped")

// Client is the public entry point: it owns the transport, the registered
// toolset, and the per-client model defaults.
type Client struct {
	streamer  provider.Streamer
	toolset   map[string]tools.ToolDefinition
	model     anthropic.Model
	maxTokens int64
	system    string
	maxTurns  int
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithModel overrides the default model for all turns on this client.
func WithModel(m anthropic.Model) Option {
	return func(c *Client) { c.model = m }
}

// WithMaxTokens overrides the per-turn output token cap.
func WithMaxTokens(n int64) Option {
	return func(c *Client) { c.maxTokens = n }
}

// WithSystem sets the system prompt sent on every turn.
func WithSystem(s string) Option {
	return func(c *Client) { c.system = s }
}

// WithMaxTurns caps loop iterations per Stream call; 0 means unbounded.
func WithMaxTurns(n int) Option {
	return func(c *Client) { c.maxTurns = n }
}

// WithStreamer replaces the transport. Mainly for tests.
func WithStreamer(s provider.Streamer) Option {
	return func(c *Client) { c.streamer = s }
}

// New returns a Client over the given API client with sensible defaults.
func New(api *anthropic.Client, opts ...Option) *Client {
	c := &Client{
		toolset:   make(map[string]tools.ToolDefinition),
		model:     provider.DefaultModel,
		maxTokens: provider.DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.streamer == nil {
		c.streamer = provider.NewStreamer(api)
	}
	return c
}

// RegisterTool makes def available to the model on subsequent turns.
// Registering the same name again replaces the earlier definition.
func (c *Client) RegisterTool(def tools.ToolDefinition) {
	c.toolset[def.Name] = def
}

// TurnOption overrides per-call settings on a single Stream invocation.
type TurnOption func(*turnConfig)

type turnConfig struct {
	model     anthropic.Model
	maxTokens int64
}

// TurnModel overrides the model for this call only.
func TurnModel(m anthropic.Model) TurnOption {
	return func(t *turnConfig) { t.model = m }
}

// TurnMaxTokens overrides the output token cap for this call only.
func TurnMaxTokens(n int64) TurnOption {
	return func(t *turnConfig) { t.maxTokens = n }
}

// Stream runs the conversation loop against hist and yields text increments
// as they arrive. The sequence ends with a single ("", err) pair if the loop
// failed; breaking out of the range cancels the remaining work cleanly.
// hist is mutated: the assistant turns and any tool results are appended.
func (c *Client) Stream(ctx context.Context, hist *memory.History, opts ...TurnOption) iter.Seq2[string, error] {
	cfg := turnConfig{model: c.model, maxTokens: c.maxTokens}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(yield func(string, error) bool) {
		r := &runner.Runner{Streamer: c.streamer, Tools: c.toolset, MaxTurns: c.maxTurns}
		p := runner.TurnParams{Model: cfg.model, MaxTokens: cfg.maxTokens, System: c.system}
		err := r.Run(ctx, p, hist, func(chunk string) error {
			if !yield(chunk, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield("", err)
		}
	}
}
