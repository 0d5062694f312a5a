package card

import "strings"

const (
	maxCardCount  = 4 // 非王牌每种点数的张数上限
	maxJokerCount = 1 // 大小王各自的张数上限
)

// Hand 定义一手牌：按点数索引的计数向量。
// 值一经构造即不可变，所有修改都通过构造新值完成。
type Hand struct {
	counts [NumRanks]uint8
}

// NewHand 校验并构造一手牌。
// 任一点数超出上限时返回 CountError，指明第一个越界的点数。
func NewHand(counts [NumRanks]uint8) (Hand, error) {
	for r := Rank3; r <= Rank2; r++ {
		if counts[r] > maxCardCount {
			return Hand{}, &CountError{Rank: r, Count: counts[r], Limit: maxCardCount}
		}
	}
	for r := RankBlackJoker; r <= RankRedJoker; r++ {
		if counts[r] > maxJokerCount {
			return Hand{}, &CountError{Rank: r, Count: counts[r], Limit: maxJokerCount}
		}
	}
	return Hand{counts: counts}, nil
}

// NewHandFromSlice 从变长计数构造一手牌，长度必须恰好为 15
func NewHandFromSlice(counts []uint8) (Hand, error) {
	if len(counts) != NumRanks {
		return Hand{}, &LengthError{Got: len(counts)}
	}
	var arr [NumRanks]uint8
	copy(arr[:], counts)
	return NewHand(arr)
}

// NewHandUnchecked 不做任何校验地构造一手牌。
// 前提：调用方已自行证明计数满足不变量（非王牌不超过 4，
// 大小王不超过 1）。违反前提是调用方的逻辑错误，库不做兜底。
func NewHandUnchecked(counts [NumRanks]uint8) Hand {
	return Hand{counts: counts}
}

// Counts 返回各点数的计数，与构造输入完全一致
func (h Hand) Counts() [NumRanks]uint8 {
	return h.counts
}

// Count 返回指定点数的张数
func (h Hand) Count(r Rank) uint8 {
	return h.counts[r]
}

// Size 返回总张数
func (h Hand) Size() int {
	total := 0
	for _, c := range h.counts {
		total += int(c)
	}
	return total
}

func (h Hand) IsEmpty() bool {
	for _, c := range h.counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// String 以点数字符拼出手牌，从大到小排列
func (h Hand) String() string {
	var b strings.Builder
	for i := NumRanks - 1; i >= 0; i-- {
		for j := uint8(0); j < h.counts[i]; j++ {
			b.WriteString(Rank(i).String())
		}
	}
	return b.String()
}

// FullDeck 返回一整副 54 张牌
func FullDeck() Hand {
	var counts [NumRanks]uint8
	for r := Rank3; r <= Rank2; r++ {
		counts[r] = maxCardCount
	}
	counts[RankBlackJoker] = maxJokerCount
	counts[RankRedJoker] = maxJokerCount
	return Hand{counts: counts}
}

// EmptyHand 返回空手牌
func EmptyHand() Hand {
	return Hand{}
}
