package input

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const fetchTimeout = 15 * time.Second

// Job URL failures callers branch on.
var (
	ErrJobURLScheme     = errors.New("invalid url scheme, only http:// and https:// urls are supported")
	ErrJobURLBlocked    = errors.New("this page may require login or block automated access; " +
		"try pasting the job description text manually")
	ErrJobURLExtraction = errors.New("could not extract job description text from this page; " +
		"the page may use dynamic loading, try pasting the job description text manually")
)

var whitespaceRuns = regexp.MustCompile(`[ \t]+`)

// FetchJobText fetches a job posting page and extracts its main text
// content.
func FetchJobText(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", ErrJobURLScheme
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "skillbridge")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch job posting (try pasting the text manually): %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrJobURLBlocked
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("http %d error fetching the page, try pasting the job description text manually", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page html: %w", err)
	}

	text := extractMainText(doc)
	if text == "" {
		return "", ErrJobURLExtraction
	}
	return text, nil
}

// extractMainText pulls readable text from the page, dropping chrome
// like scripts, navigation, and footers.
func extractMainText(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, noscript, iframe").Remove()

	root := doc.Find("main")
	if root.Length() == 0 {
		root = doc.Find("article")
	}
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var lines []string
	for _, raw := range strings.Split(root.Text(), "\n") {
		line := strings.TrimSpace(whitespaceRuns.ReplaceAllString(raw, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
