package card

import (
	"errors"
	"fmt"
)

// CountError 表示构造手牌时某个点数的张数超出允许上限
type CountError struct {
	Rank  Rank
	Count uint8
	Limit uint8
}

func (e *CountError) Error() string {
	return fmt.Sprintf("点数 %s 的张数 %d 超过上限 %d", e.Rank, e.Count, e.Limit)
}

// LengthError 表示变长计数输入的长度不是 15
type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("计数长度应为 %d，实际为 %d", NumRanks, e.Got)
}

// 预定义错误
var (
	ErrDuplicateRank = errors.New("同一点数被重复指定")
	ErrInvalidRank   = errors.New("无效的点数")
)
