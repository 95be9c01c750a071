package provider

import (
	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/web-agent/memory"
	"github.com/petasbytes/web-agent/tools"
)

// toMessageParams converts history messages to SDK message params. Unknown
// block kinds are impossible by construction (closed variant), so the switch
// is exhaustive.
func toMessageParams(msgs []memory.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(m.Content))
		for _, b := range m.Content {
			switch b.Kind {
			case memory.BlockText:
				blocks = append(blocks, anthropic.NewTextBlock(b.Text))
			case memory.BlockToolUse:
				blocks = append(blocks, anthropic.NewToolUseBlock(b.ID, b.Input, b.Name))
			case memory.BlockToolResult:
				blocks = append(blocks, anthropic.NewToolResultBlock(b.ToolUseID, b.Content, b.IsError))
			}
		}
		if m.Role == memory.RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		} else {
			out = append(out, anthropic.NewUserMessage(blocks...))
		}
	}
	return out
}

func toToolParams(defs []tools.ToolDefinition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, t := range defs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// narrowEvent maps one SDK stream event to a StreamEvent. ok is false for
// events the assembler has no use for.
func narrowEvent(ev anthropic.MessageStreamEventUnion) (StreamEvent, bool) {
	switch v := ev.AsAny().(type) {
	case anthropic.ContentBlockStartEvent:
		kind := memory.BlockText
		if v.ContentBlock.Type == "tool_use" {
			kind = memory.BlockToolUse
		}
		return StreamEvent{
			Kind:      EventBlockStart,
			BlockKind: kind,
			BlockID:   v.ContentBlock.ID,
			ToolName:  v.ContentBlock.Name,
		}, true
	case anthropic.ContentBlockDeltaEvent:
		switch v.Delta.Type {
		case "text_delta":
			return StreamEvent{Kind: EventBlockDelta, Delta: DeltaText, Text: v.Delta.Text}, true
		case "input_json_delta":
			return StreamEvent{Kind: EventBlockDelta, Delta: DeltaInputJSON, PartialJSON: v.Delta.PartialJSON}, true
		}
		return StreamEvent{}, false
	case anthropic.ContentBlockStopEvent:
		return StreamEvent{Kind: EventBlockStop}, true
	}
	return StreamEvent{}, false
}
