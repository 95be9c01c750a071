package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/web-agent/internal/assembler"
	"github.com/petasbytes/web-agent/internal/provider"
	"github.com/petasbytes/web-agent/internal/telemetry"
	"github.com/petasbytes/web-agent/internal/windowing"
	"github.com/petasbytes/web-agent/memory"
	"github.com/petasbytes/web-agent/tools"
)

// ErrUnknownTool reports a model request for a tool with no registered
// handler. This is a caller configuration bug, so the loop aborts instead of
// answering the model with an error result.
var ErrUnknownTool = errors.New("tool not registered")

// ErrTurnLimit reports that the conversation exceeded the configured turn cap.
var ErrTurnLimit = errors.New("turn limit exceeded")

// TurnParams carries the model configuration for one Run.
type TurnParams struct {
	Model     anthropic.Model
	MaxTokens int64
	System    string
}

// Runner drives the conversation loop: request a turn, assemble its stream,
// dispatch tool calls, append results, repeat until the model stops
// requesting tools.
type Runner struct {
	Streamer provider.Streamer
	Tools    map[string]tools.ToolDefinition
	// MaxTurns caps loop iterations per Run; 0 means unbounded.
	MaxTurns int
}

// New returns a Runner over the given transport and toolset. The toolset map
// is shared with the caller; registration-time overwrites are visible here.
func New(s provider.Streamer, toolset map[string]tools.ToolDefinition) *Runner {
	return &Runner{Streamer: s, Tools: toolset}
}

// Run executes the conversation loop against hist, forwarding text increments
// to emit as they stream in. hist gains an assistant message per turn, plus a
// user message wrapping the tool results whenever tools were dispatched.
func (r *Runner) Run(ctx context.Context, p TurnParams, hist *memory.History, emit func(string) error) error {
	for turn := 1; ; turn++ {
		if r.MaxTurns > 0 && turn > r.MaxTurns {
			return fmt.Errorf("runner: %w after %d turns", ErrTurnLimit, r.MaxTurns)
		}

		blocks, err := r.runOneTurn(ctx, p, hist, emit)
		if err != nil {
			return err
		}
		results, err := r.dispatch(ctx, blocks)
		if err != nil {
			return err
		}

		if len(blocks) > 0 {
			hist.Append(memory.AssistantMessage(blocks...))
		}
		if len(results) == 0 {
			// No tool requested: the model is done.
			turnID, _ := telemetry.TurnIDFromContext(ctx)
			telemetry.Emit("turn_complete", map[string]any{
				"turn_id": turnID,
				"turns":   turn,
			})
			return nil
		}
		// Tool results go back as a user message, adjacent to their tool_use.
		hist.Append(memory.UserMessage(results...))
	}
}

// runOneTurn sends the (optionally windowed) history and assembles the
// response stream into content blocks.
func (r *Runner) runOneTurn(ctx context.Context, p TurnParams, hist *memory.History, emit func(string) error) ([]memory.ContentBlock, error) {
	msgs := hist.Messages()

	if v := os.Getenv("AGT_TOKEN_BUDGET"); v != "" {
		budget, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AGT_TOKEN_BUDGET %q: %w", v, err)
		}
		window, stats := windowing.PrepareSendWindow(msgs, budget, windowing.HeuristicCounter{})
		turnID, _ := telemetry.TurnIDFromContext(ctx)
		telemetry.Emit("window_prepared", map[string]any{
			"turn_id":            turnID,
			"model":              string(p.Model),
			"budget":             stats.Budget,
			"total_estimated":    stats.Total,
			"included_groups":    stats.IncludedGroups,
			"skipped_groups":     stats.SkippedGroups,
			"over_budget_newest": stats.OverBudgetNewest,
		})
		// The newest group should always fit within AGT_TOKEN_BUDGET. If not,
		// treat it as a misconfiguration (e.g. too-low budget or result caps
		// not applied) and fail fast.
		if stats.OverBudgetNewest {
			return nil, fmt.Errorf("windowing: newest group exceeds AGT_TOKEN_BUDGET; increase budget with headroom or tighten tool result caps")
		}
		msgs = window
	}

	// Get turnID from context if present, else generate once for this call.
	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", time.Now().UnixNano())
		ctx = telemetry.WithTurnID(ctx, turnID)
	}

	events, err := r.Streamer.StreamTurn(ctx, provider.TurnRequest{
		Model:     p.Model,
		MaxTokens: p.MaxTokens,
		System:    p.System,
		Messages:  msgs,
		Tools:     r.toolList(),
	})
	if err != nil {
		return nil, err
	}
	defer events.Close()

	blocks, err := assembler.Assemble(ctx, events, emit)
	if err != nil {
		return nil, err
	}

	for _, b := range blocks {
		if b.Kind == memory.BlockText {
			telemetry.EmitTextFeatures(ctx, "assistant", b.Text)
		}
	}
	return blocks, nil
}

// toolList returns the registered definitions sorted by name so the
// advertised tool order is deterministic across runs.
func (r *Runner) toolList() []tools.ToolDefinition {
	names := make([]string, 0, len(r.Tools))
	for name := range r.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]tools.ToolDefinition, 0, len(names))
	for _, name := range names {
		out = append(out, r.Tools[name])
	}
	return out
}

// dispatch processes every tool_use block in order, producing exactly one
// tool_result per request. Execution is strictly sequential; results keep
// request order.
func (r *Runner) dispatch(ctx context.Context, blocks []memory.ContentBlock) ([]memory.ContentBlock, error) {
	var results []memory.ContentBlock
	for _, b := range blocks {
		if b.Kind != memory.BlockToolUse {
			continue
		}
		res, err := r.execTool(ctx, b)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) execTool(ctx context.Context, use memory.ContentBlock) (memory.ContentBlock, error) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	// Helper to emit a tool_exec event
	emit := func(durationMs int64, inputSize, outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   use.Name,
			"duration_ms": durationMs,
			"input_size":  inputSize,
			"output_size": outputSize,
			"turn_id":     turnID,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	start := time.Now()
	inSize := len(use.Input)

	def, ok := r.Tools[use.Name]
	if !ok {
		emit(time.Since(start).Milliseconds(), inSize, 0, "tool not registered")
		return memory.ContentBlock{}, fmt.Errorf("runner: %w: %q", ErrUnknownTool, use.Name)
	}

	out, err := def.Function(ctx, use.Input)
	if err != nil {
		// A ToolError is conversational data: the model sees it and can adjust.
		var te *tools.ToolError
		if errors.As(err, &te) {
			// Emit a generic error string to avoid leaking payloads in telemetry;
			// the detailed message travels in the tool result instead.
			emit(time.Since(start).Milliseconds(), inSize, 0, "tool error")
			return memory.ToolResultBlock(use.ID, te.Error(), true), nil
		}
		// Anything else is an internal failure; abort the loop.
		emit(time.Since(start).Milliseconds(), inSize, 0, "internal error")
		return memory.ContentBlock{}, fmt.Errorf("runner: tool %q: %w", use.Name, err)
	}

	emit(time.Since(start).Milliseconds(), inSize, len(out), "")
	return memory.ToolResultBlock(use.ID, out, false), nil
}
