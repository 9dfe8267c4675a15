package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/baxromumarov/draft-board/internal/ranking"
)

// AthleticExtractor reads boards whose rows split first and last name into
// separate spans. Rank is the row position.
type AthleticExtractor struct{}

func (AthleticExtractor) Extract(_ *goquery.Document, matched *goquery.Selection) []ranking.PlayerRank {
	var out []ranking.PlayerRank
	matched.Each(func(i int, s *goquery.Selection) {
		firstName := s.Find(".fc-player-first-name").Text()
		lastName := s.Find(".fc-player-last-name").Text()
		out = append(out, ranking.NewPlayerRank(firstName+" "+lastName, float64(i+1)))
	})
	return out
}
