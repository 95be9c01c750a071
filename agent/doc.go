// Package agent exposes the streaming conversation client: register tools,
// hold a history, and range over Stream for incremental assistant text while
// tool calls are executed behind the scenes.
package agent
