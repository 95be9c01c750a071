package tools

// In-package tests: these swap the fetch seams so the browser tools can be
// exercised without a running Chrome.

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func swapFetchText(t *testing.T, fn func(context.Context, string) (string, error)) {
	t.Helper()
	prev := fetchText
	fetchText = fn
	t.Cleanup(func() { fetchText = prev })
}

func swapFetchHTML(t *testing.T, fn func(context.Context, string) (string, error)) {
	t.Helper()
	prev := fetchHTML
	fetchHTML = fn
	t.Cleanup(func() { fetchHTML = prev })
}

func TestFetchPage_Happy(t *testing.T) {
	var fetched string
	swapFetchText(t, func(_ context.Context, u string) (string, error) {
		fetched = u
		return "Welcome to Example", nil
	})

	in, _ := json.Marshal(FetchPageInput{URL: "https://example.com/start"})
	out, err := FetchPage(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "Welcome to Example" {
		t.Fatalf("got %q", out)
	}
	if fetched != "https://example.com/start" {
		t.Fatalf("fetched %q", fetched)
	}
}

func TestFetchPage_ClampsLongText(t *testing.T) {
	swapFetchText(t, func(context.Context, string) (string, error) {
		return strings.Repeat("x", 50), nil
	})

	in, _ := json.Marshal(FetchPageInput{URL: "https://example.com/", MaxChars: 10})
	out, err := FetchPage(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(out, strings.Repeat("x", 10)+"\n") {
		t.Fatalf("got %q", out)
	}
	if !strings.HasSuffix(out, fetchTruncationSentinel) {
		t.Fatalf("missing sentinel: %q", out)
	}
}

func TestFetchPage_RejectedURLIsToolError(t *testing.T) {
	swapFetchText(t, func(context.Context, string) (string, error) {
		t.Fatal("fetch must not run for a rejected url")
		return "", nil
	})

	in, _ := json.Marshal(FetchPageInput{URL: "file:///etc/passwd"})
	_, err := FetchPage(context.Background(), in)
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Code != "ERR_URL_REJECTED" {
		t.Fatalf("code: got %q", te.Code)
	}
}

func TestFetchPage_FetchFailureIsToolError(t *testing.T) {
	swapFetchText(t, func(context.Context, string) (string, error) {
		return "", errors.New("net::ERR_NAME_NOT_RESOLVED")
	})

	in, _ := json.Marshal(FetchPageInput{URL: "https://no-such-host.example/"})
	_, err := FetchPage(context.Background(), in)
	var te *ToolError
	if !errors.As(err, &te) || te.Code != "ERR_FETCH_FAILED" {
		t.Fatalf("expected ERR_FETCH_FAILED ToolError, got %v", err)
	}
}

func TestFetchPage_CancellationPropagates(t *testing.T) {
	swapFetchText(t, func(ctx context.Context, _ string) (string, error) {
		return "", context.Canceled
	})

	in, _ := json.Marshal(FetchPageInput{URL: "https://example.com/"})
	_, err := FetchPage(context.Background(), in)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var te *ToolError
	if errors.As(err, &te) {
		t.Fatalf("cancellation must not be a ToolError")
	}
}

func TestExtractURLs_ReturnsSortedJSONArray(t *testing.T) {
	swapFetchHTML(t, func(context.Context, string) (string, error) {
		return `<a href="/b">b</a><a href="/a">a</a><a href="/a">dup</a>`, nil
	})

	in, _ := json.Marshal(ExtractURLsInput{URL: "https://example.com/"})
	out, err := ExtractURLs(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var links []string
	if err := json.Unmarshal([]byte(out), &links); err != nil {
		t.Fatalf("output is not a JSON array: %v\nout=%s", err, out)
	}
	want := []string{"https://example.com/a", "https://example.com/b"}
	if len(links) != 2 || links[0] != want[0] || links[1] != want[1] {
		t.Fatalf("got %v want %v", links, want)
	}
}

func TestExtractURLs_AppliesLimit(t *testing.T) {
	swapFetchHTML(t, func(context.Context, string) (string, error) {
		return `<a href="/1">1</a><a href="/2">2</a><a href="/3">3</a>`, nil
	})

	in, _ := json.Marshal(ExtractURLsInput{URL: "https://example.com/", Limit: 2})
	out, err := ExtractURLs(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var links []string
	if err := json.Unmarshal([]byte(out), &links); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("limit not applied: %v", links)
	}
}

func TestExtractURLs_BadInputIsToolError(t *testing.T) {
	_, err := ExtractURLs(context.Background(), json.RawMessage(`{"url":`))
	var te *ToolError
	if !errors.As(err, &te) || te.Code != "ERR_BAD_INPUT" {
		t.Fatalf("expected ERR_BAD_INPUT ToolError, got %v", err)
	}
}
