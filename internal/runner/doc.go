// Package runner coordinates streamed message exchange with the Anthropic
// Messages API and dispatches tool calls.
//
// Invariants:
//   - tool_use and the corresponding tool_result are kept adjacent within a
//     turn to preserve execution context and simplify follow-up reasoning.
//   - every tool_use dispatched in a turn yields exactly one tool_result, in
//     request order.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package runner
