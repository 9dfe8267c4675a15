package observability

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/baxromumarov/draft-board/internal/httpx"
	"github.com/baxromumarov/draft-board/internal/scraper"
)

const (
	ErrorNetwork   = "network"
	ErrorParsing   = "parsing"
	ErrorExtract   = "extract"
	ErrorRateLimit = "rate_limit"
	ErrorUnknown   = "unknown"
)

func ClassifyFetchError(err error) string {
	if err == nil {
		return ErrorUnknown
	}
	var fe *httpx.FetchError
	if errors.As(err, &fe) {
		if fe.Status == http.StatusTooManyRequests {
			return ErrorRateLimit
		}
		return ErrorNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorNetwork
	}
	return ErrorUnknown
}

func ClassifyScrapeError(err error) string {
	if err == nil {
		return ErrorUnknown
	}
	if kind := ClassifyFetchError(err); kind != ErrorUnknown {
		return kind
	}
	var ee *scraper.ExtractError
	if errors.As(err, &ee) {
		return ErrorExtract
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "parse failed") ||
		strings.Contains(msg, "invalid selector") {
		return ErrorParsing
	}
	return ErrorUnknown
}
