package provider

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

// NewAnthropicClient returns a client using API key from the env.
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

const DefaultModel = anthropic.ModelClaudeSonnet4_0
const DefaultMaxTokens = int64(1024)
const APIVersion = "2023-06-01"

// AnthropicStreamer implements Streamer over the Messages streaming API.
type AnthropicStreamer struct {
	Client *anthropic.Client
}

func NewStreamer(client *anthropic.Client) *AnthropicStreamer {
	return &AnthropicStreamer{Client: client}
}

// StreamTurn opens an SSE stream for one turn and adapts it to EventStream.
func (s *AnthropicStreamer) StreamTurn(ctx context.Context, req TurnRequest) (EventStream, error) {
	params := anthropic.MessageNewParams{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		Messages:  toMessageParams(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if len(req.Tools) > 0 {
		params.Tools = toToolParams(req.Tools)
	}
	return &sseEvents{stream: s.Client.Messages.NewStreaming(ctx, params)}, nil
}

// sseEvents narrows the SDK event union to StreamEvent, skipping message-level
// events (message_start, message_delta, message_stop, ping) and delta kinds
// the assembler does not consume (thinking, signature, citations).
type sseEvents struct {
	stream *ssestream.Stream[anthropic.MessageStreamEventUnion]
	cur    StreamEvent
}

func (s *sseEvents) Next() bool {
	for s.stream.Next() {
		ev, ok := narrowEvent(s.stream.Current())
		if !ok {
			continue
		}
		s.cur = ev
		return true
	}
	return false
}

func (s *sseEvents) Current() StreamEvent { return s.cur }
func (s *sseEvents) Err() error           { return s.stream.Err() }
func (s *sseEvents) Close() error         { return s.stream.Close() }
