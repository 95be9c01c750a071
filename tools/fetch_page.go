package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/petasbytes/web-agent/internal/browser"
	"github.com/petasbytes/web-agent/internal/safety"
)

type FetchPageInput struct {
	URL      string `json:"url" jsonschema_description:"Absolute http(s) URL of the page to fetch."`
	MaxChars int    `json:"max_chars,omitempty" jsonschema_description:"Maximum characters of page text to return (default 8000)."`
}

const defaultFetchPageChars = 8000 // fallback cap when max_chars <= 0
const fetchTruncationSentinel = "-- truncated; raise max_chars to fetch more --\n"

var FetchPageDefinition = ToolDefinition{
	Name:        "fetch_page",
	Description: "Fetch a web page in a headless browser and return its rendered body text. Only public http(s) URLs are allowed.",
	InputSchema: FetchPageInputSchema,
	Function:    FetchPage,
}

var FetchPageInputSchema = GenerateSchema[FetchPageInput]()

// fetchText is swappable so tests can run without a browser.
var fetchText = browser.FetchText

// FetchPage validates the URL against the fetch policy, renders the page, and
// returns its body text capped at max_chars. Policy and fetch failures are
// reported as ToolError so the model can correct itself; caller cancellation
// propagates as-is.
func FetchPage(ctx context.Context, input json.RawMessage) (string, error) {
	var in FetchPageInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", &ToolError{Code: "ERR_BAD_INPUT", Message: err.Error()}
	}

	u, err := safety.ValidateURL(in.URL)
	if err != nil {
		return "", &ToolError{Code: "ERR_URL_REJECTED", Message: err.Error()}
	}

	text, err := fetchText(ctx, u.String())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &ToolError{Code: "ERR_FETCH_FAILED", Message: err.Error()}
	}

	limit := in.MaxChars
	if limit <= 0 {
		limit = defaultFetchPageChars
	}
	return clampText(text, limit), nil
}

// clampText caps s at limit runes and appends the truncation sentinel when
// content was dropped. Keeps tool results predictably small for windowing.
func clampText(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	out := string(r[:limit])
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + fetchTruncationSentinel
}
