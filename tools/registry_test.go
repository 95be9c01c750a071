package tools_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/petasbytes/web-agent/tools"
)

func TestRegistry_ToolCount(t *testing.T) {
	defs := tools.Registry()
	wantCount := 2 // fetch_page, extract_urls
	if len(defs) != wantCount {
		t.Fatalf("unexpected number of tools: got %d want %d", len(defs), wantCount)
	}
}

func TestRegistry_ToolNames(t *testing.T) {
	defs := tools.Registry()
	want := map[string]struct{}{
		"fetch_page":   {},
		"extract_urls": {},
	}

	// Unexpected names detected
	for _, d := range defs {
		if _, ok := want[d.Name]; !ok {
			t.Fatalf("unexpected tool in registry: %q", d.Name)
		}
	}

	// Missing expected names
	got := map[string]struct{}{}
	for _, d := range defs {
		got[d.Name] = struct{}{}
	}
	for name := range want {
		if _, ok := got[name]; !ok {
			t.Errorf("missing expected tool: %q", name)
		}
	}

	if t.Failed() {
		t.FailNow()
	}
}

func TestGenerateSchema_DescribesInputFields(t *testing.T) {
	b, err := json.Marshal(tools.FetchPageInputSchema.Properties)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"url"`) || !strings.Contains(s, `"max_chars"`) {
		t.Fatalf("schema missing expected fields: %s", s)
	}
	if !strings.Contains(s, "Absolute http(s) URL") {
		t.Fatalf("schema missing field description: %s", s)
	}
}

func TestToolError_Message(t *testing.T) {
	e := &tools.ToolError{Message: "division by zero"}
	if e.Error() != "division by zero" {
		t.Fatalf("got %q", e.Error())
	}
	coded := &tools.ToolError{Code: "ERR_URL_REJECTED", Message: "scheme not allowed"}
	if coded.Error() != "ERR_URL_REJECTED: scheme not allowed" {
		t.Fatalf("got %q", coded.Error())
	}
}
