package card

// uncheckedAdd 逐点数相加，不做校验。
// 前提：两个操作数都满足不变量。
func (h Hand) uncheckedAdd(o Hand) Hand {
	for i := range h.counts {
		h.counts[i] += o.counts[i]
	}
	return h
}

// uncheckedSub 逐点数相减，不做校验。
// 下溢时按无符号回绕，产生的是垃圾值而不是错误。
// 前提：h 的每个计数都不小于 o 的对应计数。
func (h Hand) uncheckedSub(o Hand) Hand {
	for i := range h.counts {
		h.counts[i] -= o.counts[i]
	}
	return h
}

// Add 合并两手牌，结果重新过一遍构造校验。
// 任一点数超出上限时返回 false。
func (h Hand) Add(o Hand) (Hand, bool) {
	sum, err := NewHand(h.uncheckedAdd(o).counts)
	return sum, err == nil
}

// Sub 从手牌中减去另一手牌。
// 任一点数不足时返回 false。
func (h Hand) Sub(o Hand) (Hand, bool) {
	diff, err := NewHand(h.uncheckedSub(o).counts)
	return diff, err == nil
}
