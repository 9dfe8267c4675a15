package ranking

import "sort"

type group struct {
	sum   float64
	count int
}

// Aggregate groups rankings by player name and ranks each player by the mean
// of the ranks it received. The result is sorted ascending; ties keep the
// order in which the players were first seen.
func Aggregate(all []PlayerRank) []PlayerRank {
	groups := make(map[string]*group)
	var order []string
	for _, pr := range all {
		g, ok := groups[pr.PlayerName]
		if !ok {
			g = &group{}
			groups[pr.PlayerName] = g
			order = append(order, pr.PlayerName)
		}
		g.sum += pr.Rank
		g.count++
	}

	out := make([]PlayerRank, 0, len(order))
	for _, name := range order {
		g := groups[name]
		out = append(out, PlayerRank{
			PlayerName: name,
			Rank:       g.sum / float64(g.count),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})
	return out
}
