// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - ToolError: handler failures the model may see and correct.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Browser tools: fetch_page (rendered body text), extract_urls (outgoing links).
//   - Invariant: tool_use and its corresponding tool_result remain adjacent within a turn.
package tools
