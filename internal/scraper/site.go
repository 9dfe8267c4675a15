package scraper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/baxromumarov/draft-board/internal/ranking"
)

// Extractor maps the elements matched by a site's selector to ranked players.
// Implementations are tied to one page's markup and do no validation.
type Extractor interface {
	Extract(doc *goquery.Document, matched *goquery.Selection) []ranking.PlayerRank
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(doc *goquery.Document, matched *goquery.Selection) []ranking.PlayerRank

func (f ExtractorFunc) Extract(doc *goquery.Document, matched *goquery.Selection) []ranking.PlayerRank {
	return f(doc, matched)
}

type Site struct {
	Name      string
	URL       string
	Selector  string
	Extractor Extractor
}

// Fetcher is satisfied by httpx.CollyFetcher.
type Fetcher interface {
	FetchBytes(ctx context.Context, rawURL string) ([]byte, int, error)
}

// Result is the outcome of scraping a single site. Rankings is nil when Err
// is set.
type Result struct {
	Site     string
	Rankings []ranking.PlayerRank
	Err      error
}

// ExtractError reports a panic raised by a site's extractor.
type ExtractError struct {
	Site  string
	Value any
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s extract failed: %v", e.Site, e.Value)
}

// FetchSite downloads the site's page, applies its selector and runs its
// extractor. Failures are reported in the Result and never affect other sites.
func FetchSite(ctx context.Context, fetcher Fetcher, site Site) Result {
	res := Result{Site: site.Name}

	body, _, err := fetcher.FetchBytes(ctx, site.URL)
	if err != nil {
		res.Err = fmt.Errorf("%s fetch failed: %w", site.Name, err)
		return res
	}

	doc, err := parseDocument(body)
	if err != nil {
		res.Err = fmt.Errorf("%s parse failed: %w", site.Name, err)
		return res
	}

	matcher, err := cascadia.Compile(site.Selector)
	if err != nil {
		res.Err = fmt.Errorf("%s select failed: invalid selector %q: %w", site.Name, site.Selector, err)
		return res
	}

	rankings, err := extract(site, doc, doc.FindMatcher(matcher))
	if err != nil {
		res.Err = err
		return res
	}
	res.Rankings = rankings
	return res
}

func parseDocument(body []byte) (*goquery.Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

func extract(site Site, doc *goquery.Document, matched *goquery.Selection) (rankings []ranking.PlayerRank, err error) {
	if site.Extractor == nil {
		return nil, &ExtractError{Site: site.Name, Value: "no extractor configured"}
	}
	defer func() {
		if r := recover(); r != nil {
			rankings = nil
			err = &ExtractError{Site: site.Name, Value: r}
		}
	}()
	return site.Extractor.Extract(doc, matched), nil
}
