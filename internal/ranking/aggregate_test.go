package ranking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMean(t *testing.T) {
	all := []PlayerRank{
		NewPlayerRank("Bryce Young", 1),
		NewPlayerRank("Will Anderson", 2),
		NewPlayerRank("Will Anderson", 1),
		NewPlayerRank("Bryce Young", 3),
		NewPlayerRank("Bryce Young", 2),
		NewPlayerRank("Jalen Carter", 7),
	}

	got := Aggregate(all)
	require.Len(t, got, 3)
	assert.Equal(t, PlayerRank{PlayerName: "Will Anderson", Rank: 1.5}, got[0])
	assert.Equal(t, PlayerRank{PlayerName: "Bryce Young", Rank: 2}, got[1])
	assert.Equal(t, PlayerRank{PlayerName: "Jalen Carter", Rank: 7}, got[2])
}

func TestAggregateSingleSourceExact(t *testing.T) {
	got := Aggregate([]PlayerRank{NewPlayerRank("Bijan Robinson", 11)})
	require.Len(t, got, 1)
	assert.Equal(t, 11.0, got[0].Rank)
}

func TestAggregateSortedAscending(t *testing.T) {
	all := []PlayerRank{
		NewPlayerRank("E", 5), NewPlayerRank("A", 9), NewPlayerRank("C", 2),
		NewPlayerRank("E", 1), NewPlayerRank("B", 4), NewPlayerRank("D", 3),
		NewPlayerRank("A", 1),
	}
	got := Aggregate(all)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Rank, got[i].Rank)
	}
}

func TestAggregateTiesKeepDiscoveryOrder(t *testing.T) {
	got := Aggregate([]PlayerRank{
		NewPlayerRank("Second", 1),
		NewPlayerRank("First", 1),
		NewPlayerRank("Third", 1),
	})
	names := make([]string, 0, len(got))
	for _, pr := range got {
		names = append(names, pr.PlayerName)
	}
	assert.Equal(t, []string{"Second", "First", "Third"}, names)
}

func TestAggregateCommutative(t *testing.T) {
	a := []PlayerRank{NewPlayerRank("John Smith", 1), NewPlayerRank("Jane Doe", 2), NewPlayerRank("Max Roe", 3)}
	b := []PlayerRank{NewPlayerRank("Jane Doe", 1), NewPlayerRank("Max Roe", 5)}
	c := []PlayerRank{NewPlayerRank("Max Roe", 1), NewPlayerRank("John Smith", 4)}

	concat := func(parts ...[]PlayerRank) []PlayerRank {
		var out []PlayerRank
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	want := Aggregate(concat(a, b, c))
	for _, perm := range [][][]PlayerRank{{b, c, a}, {c, a, b}, {c, b, a}} {
		assert.ElementsMatch(t, want, Aggregate(concat(perm...)))
	}
}

func TestAggregateEmptySerializesAsArray(t *testing.T) {
	got := Aggregate(nil)
	require.NotNil(t, got)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestPlayerRankJSON(t *testing.T) {
	b, err := json.Marshal([]PlayerRank{{PlayerName: "John Smith", Rank: 1}, {PlayerName: "Jane Doe", Rank: 2.5}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"playerName":"John Smith","rank":1},{"playerName":"Jane Doe","rank":2.5}]`, string(b))
}
