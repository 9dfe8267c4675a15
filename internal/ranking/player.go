package ranking

type PlayerRank struct {
	PlayerName string  `json:"playerName"`
	Rank       float64 `json:"rank"`
}

// NewPlayerRank is the only constructor used by extractors; the name is
// normalized here and never again.
func NewPlayerRank(playerName string, rank float64) PlayerRank {
	return PlayerRank{
		PlayerName: Normalize(playerName),
		Rank:       rank,
	}
}
