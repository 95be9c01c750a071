package windowing

import (
	"unicode/utf8"

	"github.com/petasbytes/web-agent/memory"
)

// TokenCounter estimates input-token cost for messages or groups.
type TokenCounter interface {
	CountMessage(m memory.Message) int
	CountGroup(g Group, all []memory.Message) int
}

// HeuristicCounter is the current default deterministic estimator.
// Rules:
// - text blocks: rune count of Text
// - tool_result blocks: rune count of Content
// - tool_use blocks: byte length of the raw input JSON
// Each block adds a small fixed overhead for minimal formatting.
type HeuristicCounter struct{}

// Fixed per-block overhead for deterministic counts; changing this requires updating the guard test.
const blockOverhead = 4

func (HeuristicCounter) CountMessage(m memory.Message) int {
	total := 0
	for _, b := range m.Content {
		total += countBlock(b)
	}
	return total
}

func (h HeuristicCounter) CountGroup(g Group, all []memory.Message) int {
	total := 0
	for i := g.Start; i < g.End && i < len(all); i++ {
		total += h.CountMessage(all[i])
	}
	return total
}

func countBlock(b memory.ContentBlock) int {
	switch b.Kind {
	case memory.BlockText:
		return utf8.RuneCountInString(b.Text) + blockOverhead
	case memory.BlockToolResult:
		return utf8.RuneCountInString(b.Content) + blockOverhead
	case memory.BlockToolUse:
		return len(b.Input) + blockOverhead
	}
	return blockOverhead
}
