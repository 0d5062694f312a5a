// Package rule 实现牌型的结构分解、识别、比较与搜索。
package rule

import (
	"fmt"

	"doudizhu/card"
)

// Group 一组重数相同的点数，按从小到大排列。
// Consecutive 标记这些点数是否构成连续区间；
// 2 和大小王不能参与连牌，出现即破坏连续性。
type Group struct {
	Ranks       []card.Rank
	Consecutive bool
}

// appendRank 追加一个点数并维护连续性标记
func (g *Group) appendRank(r card.Rank) {
	if g.Consecutive {
		if r >= card.Rank2 {
			g.Consecutive = false
		} else if n := len(g.Ranks); n > 0 && r != g.Ranks[n-1]+1 {
			g.Consecutive = false
		}
	}
	g.Ranks = append(g.Ranks, r)
}

// Composition 手牌的结构分解：单张、对子、三张、四张各一组。
// 四个分组的点数两两不相交，并集恰好是手牌中出现过的点数。
// 只能由 Compose 构造，对外只读。
type Composition struct {
	solos Group
	pairs Group
	trios Group
	fours Group
}

func (c *Composition) Solos() Group { return c.solos }
func (c *Composition) Pairs() Group { return c.pairs }
func (c *Composition) Trios() Group { return c.trios }
func (c *Composition) Fours() Group { return c.fours }

// Compose 对手牌做一次升序扫描，按重数把点数归入四个分组。
// 已校验的手牌不可能出现 0-4 之外的计数，出现即是库内部的
// 编程错误，直接 panic。
func Compose(h card.Hand) Composition {
	comp := Composition{
		solos: Group{Consecutive: true},
		pairs: Group{Consecutive: true},
		trios: Group{Consecutive: true},
		fours: Group{Consecutive: true},
	}
	counts := h.Counts()
	for i := range counts {
		r := card.Rank(i)
		switch counts[i] {
		case 0:
		case 1:
			comp.solos.appendRank(r)
		case 2:
			comp.pairs.appendRank(r)
		case 3:
			comp.trios.appendRank(r)
		case 4:
			comp.fours.appendRank(r)
		default:
			panic(fmt.Sprintf("corrupted hand: rank %s has count %d", r, counts[i]))
		}
	}
	return comp
}
