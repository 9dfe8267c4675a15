package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

const DefaultUserAgent = "draft-board-bot/1.0"

// CollyFetcher wraps Colly for single-shot page fetches. Each call builds a
// fresh collector, so pages are never skipped as already visited.
type CollyFetcher struct {
	userAgent string
	timeout   time.Duration
}

type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch error (status %d)", e.Status)
	}
	return fmt.Sprintf("fetch error (status %d): %v", e.Status, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewCollyFetcher(userAgent string) *CollyFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &CollyFetcher{
		userAgent: userAgent,
		timeout:   15 * time.Second,
	}
}

func (f *CollyFetcher) FetchBytes(ctx context.Context, rawURL string) ([]byte, int, error) {
	var body []byte
	status, err := f.fetch(ctx, rawURL, func(c *colly.Collector) {
		c.OnResponse(func(r *colly.Response) {
			body = append([]byte(nil), r.Body...)
		})
	})
	if err != nil {
		return nil, status, err
	}
	return body, status, nil
}

func (f *CollyFetcher) fetch(ctx context.Context, rawURL string, register func(*colly.Collector)) (int, error) {
	target, err := normalizeURL(rawURL)
	if err != nil {
		return 0, &FetchError{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return 0, &FetchError{Err: err}
	}

	c := f.newCollector()
	if register != nil {
		register(c)
	}

	status := 0
	var reqErr error
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		reqErr = err
	})

	collyCtx := colly.NewContext()
	collyCtx.Put("ctx", ctx)

	if err := c.Request(http.MethodGet, target, nil, collyCtx, nil); err != nil {
		return status, &FetchError{Status: status, Err: err}
	}
	if reqErr != nil {
		return status, &FetchError{Status: status, Err: reqErr}
	}
	if err := ctx.Err(); err != nil {
		return status, &FetchError{Status: status, Err: err}
	}
	if status >= 400 {
		return status, &FetchError{Status: status, Err: fmt.Errorf("status %d", status)}
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, nil
}

func (f *CollyFetcher) newCollector() *colly.Collector {
	c := colly.NewCollector(colly.UserAgent(f.userAgent))
	// Plain GET; robots.txt is not consulted.
	c.IgnoreRobotsTxt = true
	// Whole body, whatever its size; every status reaches the >= 400 check.
	c.MaxBodySize = 0
	c.ParseHTTPErrorResponse = true
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		ctx := context.Background()
		if v := r.Ctx.GetAny("ctx"); v != nil {
			if reqCtx, ok := v.(context.Context); ok {
				ctx = reqCtx
			}
		}
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	return c
}

func normalizeURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", errors.New("empty url")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	return u.String(), nil
}
