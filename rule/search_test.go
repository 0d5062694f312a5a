package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doudizhu/card"
)

// searchKind runs a full-range search for the given kind.
func searchKind(t *testing.T, h card.Hand, kind PlayKind) []card.Hand {
	t.Helper()
	spec, ok := SpecForKind(kind, 1, card.NumRanks)
	require.True(t, ok)
	return Search(h, spec)
}

func TestSearchSolo(t *testing.T) {
	t.Parallel()

	// 单张搜索覆盖 2 和大小王
	results := searchKind(t, card.FullDeck(), Solo)
	assert.Len(t, results, 15)

	results = searchKind(t, parseHand(t, "3352R"), Solo)
	assert.Len(t, results, 4)
}

func TestSearchChainFullDeck(t *testing.T) {
	t.Parallel()

	results := searchKind(t, card.FullDeck(), Chain)
	assert.Len(t, results, 36)

	// 顺子不能摸到 2 和大小王
	for _, h := range results {
		assert.Zero(t, h.Count(card.Rank2))
		assert.Zero(t, h.Count(card.RankBlackJoker))
		assert.Zero(t, h.Count(card.RankRedJoker))

		play, ok := HandPlay(h)
		require.True(t, ok)
		assert.Equal(t, Chain, play.Kind())
	}
}

func TestSearchChainWindows(t *testing.T) {
	t.Parallel()

	// 窗口不能跨越断档
	results := searchKind(t, parseHand(t, "34567910JQK"), Chain)
	require.Len(t, results, 2)
	assert.Equal(t, parseHand(t, "34567").Counts(), results[0].Counts())
	assert.Equal(t, parseHand(t, "910JQK").Counts(), results[1].Counts())
}

func TestSearchPairsChain(t *testing.T) {
	t.Parallel()

	spec, ok := SpecForKind(PairsChain, 3, 10)
	require.True(t, ok)
	results := Search(card.FullDeck(), spec)
	assert.Len(t, results, 52)

	for _, h := range results {
		play, ok := HandPlay(h)
		require.True(t, ok)
		assert.Equal(t, PairsChain, play.Kind())
	}
}

func TestSearchBomb(t *testing.T) {
	t.Parallel()

	results := searchKind(t, card.FullDeck(), Bomb)
	assert.Len(t, results, 13)

	results = searchKind(t, parseHand(t, "333344445"), Bomb)
	assert.Len(t, results, 2)
}

func TestSearchTrioWithSolo(t *testing.T) {
	t.Parallel()

	// 三张 3 配一张单牌；单牌可以是 4、5 或小王，
	// 但绝不会同时带走两张王
	results := searchKind(t, parseHand(t, "333445B"), TrioWithSolo)
	require.Len(t, results, 3)
	for _, h := range results {
		play, ok := HandPlay(h)
		require.True(t, ok)
		assert.Equal(t, TrioWithSolo, play.Kind())
	}
}

func TestSearchAirplaneWithSolosFullDeck(t *testing.T) {
	t.Parallel()

	results := searchKind(t, card.FullDeck(), AirplaneWithSolos)
	assert.Len(t, results, 7516)

	for _, h := range results {
		// 带牌里绝不会藏一手王炸
		both := h.Count(card.RankBlackJoker) == 1 && h.Count(card.RankRedJoker) == 1
		require.False(t, both, "rocket concealed in kickers: %s", h)
	}
}

func TestSearchAirplaneWithSolosClassifies(t *testing.T) {
	t.Parallel()

	spec, ok := SpecForKind(AirplaneWithSolos, 2, 3)
	require.True(t, ok)
	for _, h := range Search(parseHand(t, "333444555678BR"), spec) {
		play, ok := HandPlay(h)
		require.True(t, ok, "unclassifiable result %s", h)
		assert.Equal(t, AirplaneWithSolos, play.Kind())
	}
}

func TestSearchFourWithDualSolo(t *testing.T) {
	t.Parallel()

	results := searchKind(t, card.FullDeck(), FourWithDualSolo)
	assert.Len(t, results, 1170)

	for _, h := range results {
		both := h.Count(card.RankBlackJoker) == 1 && h.Count(card.RankRedJoker) == 1
		require.False(t, both, "rocket selected as dual solo: %s", h)

		play, ok := HandPlay(h)
		require.True(t, ok)
		assert.Equal(t, FourWithDualSolo, play.Kind())
	}
}

func TestSearchFourWithDualPair(t *testing.T) {
	t.Parallel()

	results := searchKind(t, card.FullDeck(), FourWithDualPair)
	assert.Len(t, results, 858)

	// 对子做带牌时大小王根本进不了候选池
	for _, h := range results {
		assert.Zero(t, h.Count(card.RankBlackJoker))
		assert.Zero(t, h.Count(card.RankRedJoker))
	}
}

func TestSearchResultsAreSubsets(t *testing.T) {
	t.Parallel()

	hand := parseHand(t, "3334445566789BR")
	for kind := Solo; kind < Rocket; kind++ {
		for _, h := range searchKind(t, hand, kind) {
			_, ok := hand.Sub(h)
			require.True(t, ok, "kind %s result %s not contained in hand", kind, h)
		}
	}
}

func TestSearchEmptyResult(t *testing.T) {
	t.Parallel()

	assert.Empty(t, searchKind(t, parseHand(t, "3456"), Chain))
	assert.Empty(t, searchKind(t, parseHand(t, "33"), Bomb))
	assert.Empty(t, searchKind(t, card.EmptyHand(), Solo))
}

func TestSearchTwoNotChained(t *testing.T) {
	t.Parallel()

	// 2 只能作为单元素主体，不参与连牌
	results := searchKind(t, parseHand(t, "KKKAAA222"), Airplane)
	require.Len(t, results, 1)
	assert.Equal(t, parseHand(t, "KKKAAA").Counts(), results[0].Counts())

	results = searchKind(t, parseHand(t, "222"), Trio)
	assert.Len(t, results, 1)
}

func TestSpecForKindRocket(t *testing.T) {
	t.Parallel()

	_, ok := SpecForKind(Rocket, 1, 1)
	assert.False(t, ok)
}
