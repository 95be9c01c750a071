package tools

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
)

// ToolFunc is a tool handler. It receives the invocation's parsed input as
// raw JSON and returns the result content sent back to the model. Handlers
// report model-visible failures as *ToolError; any other error aborts the
// conversation loop.
type ToolFunc func(ctx context.Context, input json.RawMessage) (string, error)

// ToolDefinition describes one callable tool: the name and input schema
// advertised to the model, and the handler invoked when the model requests it.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    ToolFunc
}
