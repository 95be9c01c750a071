package windowing_test

import (
	"github.com/petasbytes/web-agent/internal/windowing"
	"github.com/petasbytes/web-agent/memory"
)

// Text block constructor
func T(text string) memory.ContentBlock {
	return memory.TextBlock(text)
}

// Tool-use block constructor (no input payload; grouping tests don't need one)
func TU(id string) memory.ContentBlock {
	return memory.ToolUseBlock(id, "fetch_page", nil)
}

// Tool-result block constructor with optional error flag
func TR(id string, isErr bool) memory.ContentBlock {
	return memory.ToolResultBlock(id, "", isErr)
}

// Tool-result (string payload) constructor - preferred in counter tests for deterministic sizing
func TRString(id, s string) memory.ContentBlock {
	return memory.ToolResultBlock(id, s, false)
}

// Assistant message constructor
func Asst(blocks ...memory.ContentBlock) memory.Message {
	return memory.AssistantMessage(blocks...)
}

// User message constructor
func User(blocks ...memory.ContentBlock) memory.Message {
	return memory.UserMessage(blocks...)
}

// groupsEqual is a small utility used by grouping tests.
func groupsEqual(got, want []windowing.Group) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].Kind != want[i].Kind || got[i].Start != want[i].Start || got[i].End != want[i].End {
			return false
		}
	}
	return true
}
