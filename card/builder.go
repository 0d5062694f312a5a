package card

import (
	"fmt"
	"strings"
)

// Parse 从点数字符串构造一手牌，例如 "33345" 或 "10JQKA"。
// 同一点数的字符累加计数，超限由构造校验报告。
func Parse(input string) (Hand, error) {
	cleanInput := strings.ReplaceAll(input, "10", "T")

	var counts [NumRanks]uint8
	for _, char := range cleanInput {
		rank, err := RankFromChar(char)
		if err != nil {
			return Hand{}, err
		}
		if counts[rank] < maxCardCount+1 {
			counts[rank]++ // 超过上限后不再累加，保留首个越界值供校验报告
		}
	}
	return NewHand(counts)
}

// CountSpec 指定一个点数及其张数
type CountSpec struct {
	Rank  Rank
	Count uint8
}

// Build 按点数列表构造一手牌。
// Count 为 0 时默认为 1；同一点数重复指定返回 ErrDuplicateRank。
func Build(specs ...CountSpec) (Hand, error) {
	var counts [NumRanks]uint8
	var specified [NumRanks]bool
	for _, s := range specs {
		if s.Rank < 0 || s.Rank >= NumRanks {
			return Hand{}, fmt.Errorf("%w: %d", ErrInvalidRank, s.Rank)
		}
		if specified[s.Rank] {
			return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateRank, s.Rank)
		}
		specified[s.Rank] = true

		count := s.Count
		if count == 0 {
			count = 1
		}
		counts[s.Rank] = count
	}
	return NewHand(counts)
}
