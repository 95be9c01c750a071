// Package memory defines the conversation data model.
//
// Model:
//   - ContentBlock: closed variant (text, tool_use, tool_result) discriminated
//     by Kind; consumers must handle every kind.
//   - Message: role + ordered content blocks; immutable once appended.
//   - History: append-only buffer owned by the conversation loop; callers get
//     copies via Snapshot.
//
// Invariant: every tool_result block answers a tool_use block that appeared in
// an earlier assistant message, matched by ToolUseID.
package memory
