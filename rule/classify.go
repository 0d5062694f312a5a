package rule

import (
	"slices"

	"doudizhu/card"
)

// Play 尝试把这份结构分解识别为一手合法的牌。
// 四个分组互不相交，至多命中一种牌型；识别不出时返回 false，
// 这是预期结果而非错误。
func (c *Composition) Play() (Play, bool) {
	checks := []func() (Play, bool){
		c.asSolo, c.asChain,
		c.asPair, c.asPairsChain,
		c.asTrio, c.asAirplane,
		c.asTrioWithSolo, c.asAirplaneWithSolos,
		c.asTrioWithPair, c.asAirplaneWithPairs,
		c.asBomb,
		c.asFourWithDualSolo,
		c.asFourWithDualPair,
		c.asRocket,
	}
	for _, check := range checks {
		if play, ok := check(); ok {
			return play, true
		}
	}
	return Play{}, false
}

// PlayOfKind 尝试把这份结构分解识别为指定的牌型
func (c *Composition) PlayOfKind(kind PlayKind) (Play, bool) {
	switch kind {
	case Solo:
		return c.asSolo()
	case Chain:
		return c.asChain()
	case Pair:
		return c.asPair()
	case PairsChain:
		return c.asPairsChain()
	case Trio:
		return c.asTrio()
	case Airplane:
		return c.asAirplane()
	case TrioWithSolo:
		return c.asTrioWithSolo()
	case AirplaneWithSolos:
		return c.asAirplaneWithSolos()
	case TrioWithPair:
		return c.asTrioWithPair()
	case AirplaneWithPairs:
		return c.asAirplaneWithPairs()
	case Bomb:
		return c.asBomb()
	case FourWithDualSolo:
		return c.asFourWithDualSolo()
	case FourWithDualPair:
		return c.asFourWithDualPair()
	case Rocket:
		return c.asRocket()
	}
	return Play{}, false
}

// HandPlay 判断一手牌是否恰好构成一手合法牌型
func HandPlay(h card.Hand) (Play, bool) {
	comp := Compose(h)
	return comp.Play()
}

func (c *Composition) asSolo() (Play, bool) {
	if len(c.solos.Ranks) == 1 &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 0 {
		return Play{kind: Solo, primal: slices.Clone(c.solos.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asChain() (Play, bool) {
	if len(c.solos.Ranks) >= 5 &&
		c.solos.Consecutive &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 0 {
		return Play{kind: Chain, primal: slices.Clone(c.solos.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asPair() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == 1 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 0 {
		return Play{kind: Pair, primal: slices.Clone(c.pairs.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asPairsChain() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) >= 3 &&
		c.pairs.Consecutive &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 0 {
		return Play{kind: PairsChain, primal: slices.Clone(c.pairs.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asTrio() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 1 &&
		len(c.fours.Ranks) == 0 {
		return Play{kind: Trio, primal: slices.Clone(c.trios.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asAirplane() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) >= 2 &&
		c.trios.Consecutive &&
		len(c.fours.Ranks) == 0 {
		return Play{kind: Airplane, primal: slices.Clone(c.trios.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asTrioWithSolo() (Play, bool) {
	if len(c.solos.Ranks) == 1 &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 1 &&
		len(c.fours.Ranks) == 0 {
		return Play{
			kind:   TrioWithSolo,
			primal: slices.Clone(c.trios.Ranks),
			kicker: slices.Clone(c.solos.Ranks),
		}, true
	}
	return Play{}, false
}

func (c *Composition) asAirplaneWithSolos() (Play, bool) {
	n := len(c.solos.Ranks)
	if n == len(c.trios.Ranks) && n >= 2 &&
		// 带牌里不允许藏一手王炸
		!(c.solos.Ranks[n-1] == card.RankRedJoker && c.solos.Ranks[n-2] == card.RankBlackJoker) &&
		len(c.pairs.Ranks) == 0 &&
		c.trios.Consecutive &&
		len(c.fours.Ranks) == 0 {
		return Play{
			kind:   AirplaneWithSolos,
			primal: slices.Clone(c.trios.Ranks),
			kicker: slices.Clone(c.solos.Ranks),
		}, true
	}
	return Play{}, false
}

func (c *Composition) asTrioWithPair() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == 1 &&
		len(c.trios.Ranks) == 1 &&
		len(c.fours.Ranks) == 0 {
		return Play{
			kind:   TrioWithPair,
			primal: slices.Clone(c.trios.Ranks),
			kicker: slices.Clone(c.pairs.Ranks),
		}, true
	}
	return Play{}, false
}

func (c *Composition) asAirplaneWithPairs() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == len(c.trios.Ranks) &&
		len(c.trios.Ranks) >= 2 &&
		c.trios.Consecutive &&
		len(c.fours.Ranks) == 0 {
		return Play{
			kind:   AirplaneWithPairs,
			primal: slices.Clone(c.trios.Ranks),
			kicker: slices.Clone(c.pairs.Ranks),
		}, true
	}
	return Play{}, false
}

func (c *Composition) asBomb() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 1 {
		return Play{kind: Bomb, primal: slices.Clone(c.fours.Ranks)}, true
	}
	return Play{}, false
}

func (c *Composition) asFourWithDualSolo() (Play, bool) {
	if len(c.solos.Ranks) == 2 &&
		// 两张单牌升序排列，较小的一张是小王就意味着
		// 带牌恰好是双王，同样不允许藏王炸
		c.solos.Ranks[0] != card.RankBlackJoker &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 1 {
		return Play{
			kind:   FourWithDualSolo,
			primal: slices.Clone(c.fours.Ranks),
			kicker: slices.Clone(c.solos.Ranks),
		}, true
	}
	return Play{}, false
}

func (c *Composition) asFourWithDualPair() (Play, bool) {
	if len(c.solos.Ranks) == 0 &&
		len(c.pairs.Ranks) == 2 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 1 {
		return Play{
			kind:   FourWithDualPair,
			primal: slices.Clone(c.fours.Ranks),
			kicker: slices.Clone(c.pairs.Ranks),
		}, true
	}
	return Play{}, false
}

func (c *Composition) asRocket() (Play, bool) {
	if len(c.solos.Ranks) == 2 &&
		c.solos.Ranks[0] == card.RankBlackJoker &&
		c.solos.Ranks[1] == card.RankRedJoker &&
		len(c.pairs.Ranks) == 0 &&
		len(c.trios.Ranks) == 0 &&
		len(c.fours.Ranks) == 0 {
		return Play{
			kind:   Rocket,
			primal: []card.Rank{card.RankBlackJoker, card.RankRedJoker},
		}, true
	}
	return Play{}, false
}
