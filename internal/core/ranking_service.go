package core

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/baxromumarov/draft-board/internal/observability"
	"github.com/baxromumarov/draft-board/internal/ranking"
	"github.com/baxromumarov/draft-board/internal/scraper"
)

// RankingService scrapes every configured site, one after another, and
// combines their boards into a single ranking.
type RankingService struct {
	fetcher scraper.Fetcher
	sites   []scraper.Site
	errLog  *log.Logger
}

// NewRankingService builds a service over sites. Failed sites are reported
// on errLog as "ERROR: ..." lines; a nil errLog writes to stderr.
func NewRankingService(fetcher scraper.Fetcher, sites []scraper.Site, errLog *log.Logger) *RankingService {
	if errLog == nil {
		errLog = log.New(os.Stderr, "ERROR: ", 0)
	}
	return &RankingService{
		fetcher: fetcher,
		sites:   sites,
		errLog:  errLog,
	}
}

func (s *RankingService) Sites() []scraper.Site {
	return s.sites
}

// Collect fetches each site sequentially. A failing site is logged and its
// Result carries the error; the remaining sites are still fetched.
func (s *RankingService) Collect(ctx context.Context) ([]scraper.Result, error) {
	results := make([]scraper.Result, 0, len(s.sites))
	for _, site := range s.sites {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		res := scraper.FetchSite(ctx, s.fetcher, site)
		if res.Err != nil {
			s.errLog.Print(res.Err)
			observability.IncError(observability.ClassifyScrapeError(res.Err), site.Name)
		} else {
			observability.IncPagesFetched(site.Name)
			observability.AddPlayersExtracted(site.Name, len(res.Rankings))
		}
		results = append(results, res)
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// Rankings returns the combined board sorted by ascending mean rank.
func (s *RankingService) Rankings(ctx context.Context) ([]ranking.PlayerRank, error) {
	start := time.Now()

	results, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}

	var all []ranking.PlayerRank
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		all = append(all, res.Rankings...)
	}

	combined := ranking.Aggregate(all)
	observability.ObserveRunDuration(time.Since(start).Seconds())
	return combined, nil
}
