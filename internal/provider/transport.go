package provider

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/web-agent/memory"
	"github.com/petasbytes/web-agent/tools"
)

// EventKind enumerates the stream event kinds the assembler consumes.
// The provider emits blocks strictly sequentially: start, deltas, stop.
type EventKind string

const (
	EventBlockStart EventKind = "content_block_start"
	EventBlockDelta EventKind = "content_block_delta"
	EventBlockStop  EventKind = "content_block_stop"
)

// DeltaKind discriminates the payload of a block-delta event.
type DeltaKind string

const (
	DeltaText      DeltaKind = "text_delta"
	DeltaInputJSON DeltaKind = "input_json_delta"
)

// StreamEvent is one event of a model turn, already narrowed to the fields
// the assembler needs. Only the fields for the active Kind are set.
type StreamEvent struct {
	Kind EventKind

	// EventBlockStart: the declared block.
	BlockKind memory.BlockKind
	BlockID   string // tool_use invocation id
	ToolName  string // tool_use tool name

	// EventBlockDelta.
	Delta       DeltaKind
	Text        string // DeltaText payload
	PartialJSON string // DeltaInputJSON payload
}

// EventStream is a pull-based sequence of stream events for one turn.
// Next reports whether another event is available; Err must be checked after
// Next returns false.
type EventStream interface {
	Next() bool
	Current() StreamEvent
	Err() error
	Close() error
}

// TurnRequest carries everything needed to request one model turn.
type TurnRequest struct {
	Model     anthropic.Model
	MaxTokens int64
	System    string
	Messages  []memory.Message
	Tools     []tools.ToolDefinition
}

// Streamer is the transport boundary: it requests a turn and returns its
// event stream. Authentication and connection lifecycle live behind it.
type Streamer interface {
	StreamTurn(ctx context.Context, req TurnRequest) (EventStream, error)
}
