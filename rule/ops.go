package rule

import "doudizhu/card"

// AddPlay 把一手牌型的牌加回手牌。
// 任一点数超出上限时返回 false。
func AddPlay(h card.Hand, p Play) (card.Hand, bool) {
	return h.Add(p.ToHand())
}

// SubPlay 从手牌中打出一手牌型。
// 手牌不足以覆盖这手牌时返回 false。
func SubPlay(h card.Hand, p Play) (card.Hand, bool) {
	return h.Sub(p.ToHand())
}
