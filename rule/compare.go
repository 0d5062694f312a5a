package rule

import "cmp"

// kindLevel 炸弹和王炸跨牌型比较时的等级
func kindLevel(k PlayKind) int {
	switch k {
	case Bomb:
		return 1
	case Rocket:
		return 2
	default:
		return 0
	}
}

// ComparePlayKinds 牌型之间的偏序比较。
// 相同牌型相等；炸弹大过普通牌型，王炸大过一切；
// 两个不同的普通牌型不可比较，ok 为 false。
func ComparePlayKinds(a, b PlayKind) (ord int, ok bool) {
	if a == b {
		return 0, true
	}
	la, lb := kindLevel(a), kindLevel(b)
	if la == lb {
		return 0, false
	}
	return cmp.Compare(la, lb), true
}

// Compare 两手牌的偏序比较，ord 为 -1、0、1。
// 同牌型按主体最小点数比大小，连续类牌型还要求长度一致；
// 牌型不同时只有炸弹和王炸能分出高下，其余不可比较。
func (p Play) Compare(other Play) (ord int, ok bool) {
	if p.kind != other.kind {
		return ComparePlayKinds(p.kind, other.kind)
	}
	if len(p.primal) != len(other.primal) {
		return 0, false
	}
	return cmp.Compare(p.primal[0], other.primal[0]), true
}

// Beats 判断这手牌能否严格大过 other，不可比较时为 false
func (p Play) Beats(other Play) bool {
	ord, ok := p.Compare(other)
	return ok && ord > 0
}
