package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/baxromumarov/draft-board/internal/ranking"
)

// RankedItemExtractor reads lists where each item links to the player page
// and the link text is the full name.
type RankedItemExtractor struct{}

func (RankedItemExtractor) Extract(_ *goquery.Document, matched *goquery.Selection) []ranking.PlayerRank {
	var out []ranking.PlayerRank
	matched.Each(func(i int, s *goquery.Selection) {
		out = append(out, ranking.NewPlayerRank(s.Find("a").Text(), float64(i+1)))
	})
	return out
}
