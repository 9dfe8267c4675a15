package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/baxromumarov/draft-board/internal/ranking"
)

// bigBoardSkip is the number of intro paragraphs before the first ranked row.
const bigBoardSkip = 2

// BigBoardExtractor reads prose boards where each paragraph looks like
// "1. Bryce Young, QB, Alabama".
type BigBoardExtractor struct{}

func (BigBoardExtractor) Extract(_ *goquery.Document, matched *goquery.Selection) []ranking.PlayerRank {
	var out []ranking.PlayerRank
	matched.Each(func(i int, s *goquery.Selection) {
		if i < bigBoardSkip {
			return
		}
		out = append(out, ranking.NewPlayerRank(bigBoardName(s.Text()), float64(i-bigBoardSkip+1)))
	})
	return out
}

// bigBoardName cuts the name out of a row: after the first ". " and before
// the two-letter position that precedes the last ", ".
func bigBoardName(row string) string {
	return sliceIndex(row, strings.Index(row, ". ")+2, strings.LastIndex(row, ", ")-4)
}

// sliceIndex slices s with lenient bounds: negative indexes count back from
// the end, out of range indexes are clamped and an inverted range is empty.
func sliceIndex(s string, start, end int) string {
	n := len(s)
	start = clampIndex(start, n)
	end = clampIndex(end, n)
	if start >= end {
		return ""
	}
	return s[start:end]
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}
