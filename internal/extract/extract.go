// Package extract fetches external resume documents as plain text.
package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"resumechat/internal/textutil"
)

const maxDocumentSize = 4 << 20

// HTTP fetches a document over HTTP and returns its cleaned text
// content. It only accepts text responses; binary formats need to be
// converted upstream.
type HTTP struct {
	client *http.Client
}

// NewHTTP builds an extractor with the given timeout (15s when zero).
func NewHTTP(timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTP{client: &http.Client{Timeout: timeout}}
}

func (h *HTTP) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain, text/*;q=0.9")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch document: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	text := textutil.CleanSnippet(string(body))
	if text == "" {
		return "", fmt.Errorf("document at %s contained no text", url)
	}
	return text, nil
}
