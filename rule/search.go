package rule

import (
	"slices"

	"doudizhu/card"
)

// PlaySpec describes the shape of plays to search for in a hand.
// Searching for Rocket is unsupported; it is a fixed two-card play
// with no shape parameters.
type PlaySpec struct {
	// PrimalSize is the number of cards in each primal element:
	// 1 for Solo/Chain, 2 for Pair/PairsChain, 3 for trio-based
	// plays, 4 for four-based plays.
	PrimalSize int

	// MinRun and MaxRun bound the number of primal elements,
	// inclusive. Chain-like plays run longer than one element;
	// every other play uses exactly one.
	MinRun int
	MaxRun int

	// KickerSize is the number of cards in each kicker element:
	// 0 for no kicker, 1 for solo kickers, 2 for pair kickers.
	KickerSize int

	// KickerCount maps a run length to the number of kicker
	// elements. A nil KickerCount means no kickers at all.
	KickerCount func(run int) int
}

// SpecForKind 返回搜索指定牌型所用的形状参数。
// minRun、maxRun 只对连续类牌型生效，且会被收紧到该牌型的
// 最短合法长度；王炸没有可搜索的形状，ok 为 false。
func SpecForKind(kind PlayKind, minRun, maxRun int) (PlaySpec, bool) {
	fixed := func(spec PlaySpec) (PlaySpec, bool) {
		spec.MinRun, spec.MaxRun = 1, 1
		return spec, true
	}
	chained := func(spec PlaySpec, floor int) (PlaySpec, bool) {
		spec.MinRun, spec.MaxRun = max(minRun, floor), maxRun
		return spec, true
	}
	one := func(int) int { return 1 }
	two := func(int) int { return 2 }
	each := func(run int) int { return run }

	switch kind {
	case Solo:
		return fixed(PlaySpec{PrimalSize: 1})
	case Chain:
		return chained(PlaySpec{PrimalSize: 1}, 5)
	case Pair:
		return fixed(PlaySpec{PrimalSize: 2})
	case PairsChain:
		return chained(PlaySpec{PrimalSize: 2}, 3)
	case Trio:
		return fixed(PlaySpec{PrimalSize: 3})
	case Airplane:
		return chained(PlaySpec{PrimalSize: 3}, 2)
	case TrioWithSolo:
		return fixed(PlaySpec{PrimalSize: 3, KickerSize: 1, KickerCount: one})
	case AirplaneWithSolos:
		return chained(PlaySpec{PrimalSize: 3, KickerSize: 1, KickerCount: each}, 2)
	case TrioWithPair:
		return fixed(PlaySpec{PrimalSize: 3, KickerSize: 2, KickerCount: one})
	case AirplaneWithPairs:
		return chained(PlaySpec{PrimalSize: 3, KickerSize: 2, KickerCount: each}, 2)
	case Bomb:
		return fixed(PlaySpec{PrimalSize: 4})
	case FourWithDualSolo:
		return fixed(PlaySpec{PrimalSize: 4, KickerSize: 1, KickerCount: two})
	case FourWithDualPair:
		return fixed(PlaySpec{PrimalSize: 4, KickerSize: 2, KickerCount: two})
	}
	return PlaySpec{}, false
}

// Search enumerates every sub-hand of h matching the spec. Results
// contain exactly the primal and kicker cards, ordered by ascending
// run length, then ascending window start. An empty result means no
// play of that shape exists; it is never an error.
func Search(h card.Hand, spec PlaySpec) []card.Hand {
	if spec.PrimalSize < 1 || spec.PrimalSize > 4 {
		return nil
	}

	var results []card.Hand
	for run := max(spec.MinRun, 1); run <= spec.MaxRun; run++ {
		kickers := 0
		if spec.KickerCount != nil {
			kickers = spec.KickerCount(run)
		}
		// Defensive unit bound: primal plus kicker elements can
		// never occupy more than the 15 rank slots.
		if run+kickers > card.NumRanks {
			continue
		}
		results = append(results, searchRun(h, spec, run, kickers)...)
	}
	return results
}

// searchRun enumerates plays with exactly run primal elements.
func searchRun(h card.Hand, spec PlaySpec, run, kickers int) []card.Hand {
	counts := h.Counts()
	primalSize := uint8(spec.PrimalSize)

	// Collect ranks with enough cards to serve as a primal element.
	// 2 and the jokers cannot be chained, so they only qualify
	// when the run is a single element.
	var qualifying []card.Rank
	for i := range counts {
		r := card.Rank(i)
		if counts[i] < primalSize {
			continue
		}
		if run > 1 && r >= card.Rank2 {
			continue
		}
		qualifying = append(qualifying, r)
	}

	var results []card.Hand
	for _, window := range slideWindows(qualifying, run) {
		if kickers == 0 {
			var out [card.NumRanks]uint8
			for _, r := range window {
				out[r] = primalSize
			}
			// 计数直接取自合法手牌，不变量在本地成立
			results = append(results, card.NewHandUnchecked(out))
			continue
		}
		results = append(results, attachKickers(counts, spec, window, kickers)...)
	}
	return results
}

// slideWindows partitions ranks into maximal consecutive runs and
// slides a window of the given width inside each run. Windows never
// cross a run boundary.
func slideWindows(ranks []card.Rank, width int) [][]card.Rank {
	var windows [][]card.Rank
	start := 0
	for i := 1; i <= len(ranks); i++ {
		if i < len(ranks) && ranks[i] == ranks[i-1]+1 {
			continue
		}
		for j := start; j+width <= i; j++ {
			windows = append(windows, ranks[j:j+width])
		}
		start = i
	}
	return windows
}

// attachKickers emits one hand per kicker combination for a fixed
// primal window.
func attachKickers(counts [card.NumRanks]uint8, spec PlaySpec, window []card.Rank, kickers int) []card.Hand {
	primalSize := uint8(spec.PrimalSize)
	kickerSize := uint8(spec.KickerSize)

	// Window ranks are consecutive, so a range test suffices.
	inWindow := func(r card.Rank) bool {
		return r >= window[0] && r <= window[len(window)-1]
	}

	// Build the kicker pool from ranks outside the window with
	// enough cards. Jokers are held out of the main pool and only
	// substituted one at a time, so a concealed rocket can never
	// ride in as kickers. Pair-sized kickers exclude jokers
	// naturally since their count caps at one.
	var pool, jokers []card.Rank
	for i := range counts {
		r := card.Rank(i)
		if counts[i] < kickerSize || inWindow(r) {
			continue
		}
		if r >= card.RankBlackJoker {
			jokers = append(jokers, r)
			continue
		}
		pool = append(pool, r)
	}

	emit := func(chosen []card.Rank) card.Hand {
		var out [card.NumRanks]uint8
		for _, r := range window {
			out[r] = primalSize
		}
		for _, r := range chosen {
			out[r] = kickerSize
		}
		return card.NewHandUnchecked(out)
	}

	var results []card.Hand
	for _, combo := range combinations(pool, kickers) {
		results = append(results, emit(combo))
	}
	// For solo kickers, one joker may stand in for one pool
	// member. Never both jokers in the same play.
	if spec.KickerSize == 1 {
		for _, joker := range jokers {
			for _, combo := range combinations(pool, kickers-1) {
				results = append(results, emit(append(combo, joker)))
			}
		}
	}
	return results
}

// combinations enumerates all k-element subsets of ranks, in
// lexicographic order. k == 0 yields the single empty combination.
func combinations(ranks []card.Rank, k int) [][]card.Rank {
	if k == 0 {
		return [][]card.Rank{nil}
	}
	if k < 0 || k > len(ranks) {
		return nil
	}
	var result [][]card.Rank
	combo := make([]card.Rank, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(combo) == k {
			result = append(result, slices.Clone(combo))
			return
		}
		for i := start; i <= len(ranks)-(k-len(combo)); i++ {
			combo = append(combo, ranks[i])
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)
	return result
}
