package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/net/html"
)

const (
	scrapeMaxRedirects = 3
	scrapeMaxBodyBytes = 2 << 20 // 2 MiB of raw HTML is plenty for text extraction
)

// WebScrapeTool fetches a single URL, extracts the page's visible
// text, and returns a bounded summary biased toward the objective.
type WebScrapeTool struct {
	summarizer Summarizer
	maxTokens  int
	hint       string
	cache      *expirable.LRU[string, string]
	client     *http.Client
}

func NewWebScrapeTool(summarizer Summarizer, maxTokens int, hint string) *WebScrapeTool {
	client := &http.Client{
		Timeout: webTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > scrapeMaxRedirects {
				return fmt.Errorf("stopped after %d redirects", scrapeMaxRedirects)
			}
			if err := checkSSRF(req.URL.String()); err != nil {
				return fmt.Errorf("redirect SSRF protection: %w", err)
			}
			return nil
		},
	}

	return &WebScrapeTool{
		summarizer: summarizer,
		maxTokens:  maxTokens,
		hint:       hint,
		cache:      newWebCache(),
		client:     client,
	}
}

func (t *WebScrapeTool) Name() string { return "web_scrape" }

func (t *WebScrapeTool) Execute(ctx context.Context, arg string) *Result {
	rawURL := strings.TrimSpace(arg)
	if rawURL == "" {
		return ErrorResult("web_scrape requires a single URL")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrorResult(fmt.Sprintf("invalid URL: %v", err)).WithError(err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrorResult("only http and https URLs are supported")
	}
	if err := checkSSRF(rawURL); err != nil {
		return ErrorResult(fmt.Sprintf("SSRF protection: %v", err)).WithError(err)
	}

	if cached, ok := t.cache.Get(normalizeCacheKey(rawURL)); ok {
		return NewResult(cached)
	}

	text, err := t.fetchText(ctx, rawURL)
	if err != nil {
		return ErrorResult(fmt.Sprintf("scrape failed: %v", err)).WithError(err)
	}

	summary, err := t.summarizer.ChunkedSummarize(ctx, text, t.maxTokens, t.hint)
	if err != nil {
		return ErrorResult(err.Error()).WithError(err)
	}

	t.cache.Add(normalizeCacheKey(rawURL), summary)
	return NewResult(summary)
}

func (t *WebScrapeTool) fetchText(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", webUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, scrapeMaxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "application/xhtml") {
		return VisibleText(string(body)), nil
	}
	return string(body), nil
}

var (
	reMultiNL = regexp.MustCompile(`\n{3,}`)
	reMultiSP = regexp.MustCompile(`[ \t]{2,}`)
)

// VisibleText strips markup and returns the text a reader would see,
// skipping script, style, and non-content containers.
func VisibleText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		// Fall back to tag stripping when the markup is unparseable.
		return strings.TrimSpace(htmlTagRe.ReplaceAllString(rawHTML, " "))
	}

	skip := map[string]bool{
		"script": true, "style": true, "noscript": true,
		"head": true, "nav": true, "footer": true,
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skip[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				sb.WriteString(text)
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	s := sb.String()
	s = reMultiSP.ReplaceAllString(s, " ")
	s = reMultiNL.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
