package tools

// ToolError is a handler failure the model is allowed to see. The dispatch
// layer converts it into an error-flagged tool_result and the conversation
// continues; any other handler error aborts the loop instead.
type ToolError struct {
	Code    string // optional machine-readable code, e.g. ERR_URL_REJECTED
	Message string
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}
