package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/cpkonha/talentgraph/internal/taxonomy"
)

var (
	// ErrHTTPRequestFailed is returned when the posting URL cannot be fetched.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be extracted.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

const fetchTimeout = 15 * time.Second

// noiseSelectors are stripped before text extraction.
var noiseSelectors = []string{"script", "style", "noscript", "nav", "header", "footer", "aside", "form"}

// contentSelectors are tried in order; the first non-empty wins.
var contentSelectors = []string{"main", "article", "body"}

// FetchPostingText fetches a role posting URL and extracts its main text.
// This is a diagnostic helper for seeding role skill lists, not part of the
// scoring core.
func FetchPostingText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrHTTPRequestFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	return ExtractMainText(doc)
}

// ExtractMainText strips noise elements and returns the collapsed text of
// the first matching content region.
func ExtractMainText(doc *goquery.Document) (string, error) {
	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}
	for _, selector := range contentSelectors {
		text := collapseWhitespace(doc.Find(selector).First().Text())
		if text != "" {
			return text, nil
		}
	}
	return "", ErrContentExtractionFailed
}

// SuggestSkills runs the taxonomy matcher over posting text and returns the
// canonical tags it mentions, sorted.
func SuggestSkills(text string) []string {
	return taxonomy.Extract(text).Sorted()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
