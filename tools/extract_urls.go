package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/petasbytes/web-agent/internal/browser"
	"github.com/petasbytes/web-agent/internal/safety"
)

type ExtractURLsInput struct {
	URL   string `json:"url" jsonschema_description:"Absolute http(s) URL of the page to scan for links."`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of links to return (default 100)."`
}

// defaultExtractURLsLimit is the fallback link cap when limit <= 0.
const defaultExtractURLsLimit = 100

var ExtractURLsDefinition = ToolDefinition{
	Name:        "extract_urls",
	Description: "Fetch a web page and return the absolute http(s) URLs it links to, deduplicated and sorted.",
	InputSchema: ExtractURLsInputSchema,
	Function:    ExtractURLs,
}

var ExtractURLsInputSchema = GenerateSchema[ExtractURLsInput]()

// fetchHTML is swappable so tests can run without a browser.
var fetchHTML = browser.FetchHTML

// ExtractURLs renders the page and lists its outgoing links.
//
// Contract: returns a JSON-encoded []string so the model receives a uniform
// payload regardless of link count.
func ExtractURLs(ctx context.Context, input json.RawMessage) (string, error) {
	var in ExtractURLsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", &ToolError{Code: "ERR_BAD_INPUT", Message: err.Error()}
	}

	u, err := safety.ValidateURL(in.URL)
	if err != nil {
		return "", &ToolError{Code: "ERR_URL_REJECTED", Message: err.Error()}
	}

	html, err := fetchHTML(ctx, u.String())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &ToolError{Code: "ERR_FETCH_FAILED", Message: err.Error()}
	}

	links, err := browser.ExtractLinks(html, u)
	if err != nil {
		return "", &ToolError{Code: "ERR_PARSE_FAILED", Message: err.Error()}
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultExtractURLsLimit
	}
	if len(links) > limit {
		links = links[:limit]
	}

	b, err := json.Marshal(links)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
