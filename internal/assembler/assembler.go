package assembler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/petasbytes/web-agent/internal/provider"
	"github.com/petasbytes/web-agent/internal/telemetry"
	"github.com/petasbytes/web-agent/memory"
)

// ErrBadEventOrder reports a malformed provider stream (a delta or stop event
// with no open block). Not retried; the turn is aborted.
var ErrBadEventOrder = errors.New("event received with no open content block")

// Assemble consumes one turn's event stream and reconstructs its content
// blocks. Text deltas are forwarded to emit as they arrive; a single "\n" is
// emitted when a text block closes, as a block-boundary marker. Tool-use input
// fragments are accumulated silently and parsed once the block closes; the
// empty accumulation parses to the empty object.
//
// If the stream ends mid-block, the incomplete block is dropped and a
// stream_truncated telemetry event records the loss.
func Assemble(ctx context.Context, events provider.EventStream, emit func(string) error) ([]memory.ContentBlock, error) {
	var (
		blocks  []memory.ContentBlock
		pending *memory.ContentBlock
		buf     strings.Builder
	)

	for events.Next() {
		ev := events.Current()
		switch ev.Kind {
		case provider.EventBlockStart:
			pending = &memory.ContentBlock{Kind: ev.BlockKind, ID: ev.BlockID, Name: ev.ToolName}
			buf.Reset()

		case provider.EventBlockDelta:
			if pending == nil {
				return nil, fmt.Errorf("assembler: content_block_delta: %w", ErrBadEventOrder)
			}
			switch ev.Delta {
			case provider.DeltaText:
				buf.WriteString(ev.Text)
				if err := emit(ev.Text); err != nil {
					return nil, err
				}
			case provider.DeltaInputJSON:
				buf.WriteString(ev.PartialJSON)
			}

		case provider.EventBlockStop:
			if pending == nil {
				return nil, fmt.Errorf("assembler: content_block_stop: %w", ErrBadEventOrder)
			}
			done, err := finalize(pending, buf.String(), emit)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, done)
			pending = nil
			buf.Reset()
		}
	}
	if err := events.Err(); err != nil {
		return nil, err
	}

	if pending != nil {
		// Stream ended mid-block: drop the partial block, but leave a trace.
		turnID, _ := telemetry.TurnIDFromContext(ctx)
		telemetry.Emit("stream_truncated", map[string]any{
			"turn_id":        turnID,
			"block_kind":     string(pending.Kind),
			"buffered_bytes": buf.Len(),
		})
	}
	return blocks, nil
}

// finalize closes the pending block with its accumulated buffer.
func finalize(pending *memory.ContentBlock, raw string, emit func(string) error) (memory.ContentBlock, error) {
	switch pending.Kind {
	case memory.BlockToolUse:
		if raw == "" {
			raw = "{}"
		}
		if !json.Valid([]byte(raw)) {
			return memory.ContentBlock{}, fmt.Errorf("assembler: tool input for %q is not valid JSON", pending.Name)
		}
		pending.Input = json.RawMessage(raw)
	default:
		pending.Text = raw
		if err := emit("\n"); err != nil {
			return memory.ContentBlock{}, err
		}
	}
	return *pending, nil
}
