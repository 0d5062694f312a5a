package rule

import "doudizhu/card"

// PlayKind 定义牌型
type PlayKind int

const (
	Solo              PlayKind = iota // 单张
	Chain                             // 顺子（5张或以上连续单张）
	Pair                              // 对子
	PairsChain                        // 连对（3对或以上）
	Trio                              // 三张不带
	Airplane                          // 飞机不带翅膀（2个或以上连续三张）
	TrioWithSolo                      // 三带一
	AirplaneWithSolos                 // 飞机带单
	TrioWithPair                      // 三带二
	AirplaneWithPairs                 // 飞机带对
	Bomb                              // 炸弹（四张相同）
	FourWithDualSolo                  // 四带二单
	FourWithDualPair                  // 四带二对
	Rocket                            // 王炸（双王）
)

// playKindNames 牌型名称映射表
var playKindNames = map[PlayKind]string{
	Solo:              "单张",
	Chain:             "顺子",
	Pair:              "对子",
	PairsChain:        "连对",
	Trio:              "三张",
	Airplane:          "飞机",
	TrioWithSolo:      "三带一",
	AirplaneWithSolos: "飞机带单",
	TrioWithPair:      "三带二",
	AirplaneWithPairs: "飞机带对",
	Bomb:              "炸弹",
	FourWithDualSolo:  "四带二单",
	FourWithDualPair:  "四带二对",
	Rocket:            "王炸",
}

func (k PlayKind) String() string {
	if name, ok := playKindNames[k]; ok {
		return name
	}
	return "无效"
}

// kindShapes 每种牌型的主体单元和带牌单元各占几张
var kindShapes = map[PlayKind]struct{ primal, kicker uint8 }{
	Solo:              {1, 0},
	Chain:             {1, 0},
	Pair:              {2, 0},
	PairsChain:        {2, 0},
	Trio:              {3, 0},
	Airplane:          {3, 0},
	TrioWithSolo:      {3, 1},
	AirplaneWithSolos: {3, 1},
	TrioWithPair:      {3, 2},
	AirplaneWithPairs: {3, 2},
	Bomb:              {4, 0},
	FourWithDualSolo:  {4, 1},
	FourWithDualPair:  {4, 2},
	Rocket:            {1, 0},
}

// Play 一手合法的牌：牌型加上主体与带牌的点数。
// 只能由牌型识别产出，或经 NewPlayUnchecked 显式绕过校验构造；
// 对外只读，识别后无法再被篡改。
type Play struct {
	kind   PlayKind
	primal []card.Rank
	kicker []card.Rank
}

func (p Play) Kind() PlayKind { return p.kind }

// Primal 返回主体部分的点数，升序。
// 王炸的主体固定为小王、大王。
func (p Play) Primal() []card.Rank { return p.primal }

// Kickers 返回带牌部分的点数，升序；无带牌时为空
func (p Play) Kickers() []card.Rank { return p.kicker }

// ToHand 按牌型赋予每个点数对应的张数，还原为手牌。
// 单张记 1、对子记 2、三张记 3、炸弹记 4，王炸为大小王各一张。
func (p Play) ToHand() card.Hand {
	var counts [card.NumRanks]uint8
	if p.kind == Rocket {
		counts[card.RankBlackJoker] = 1
		counts[card.RankRedJoker] = 1
		return card.NewHandUnchecked(counts)
	}
	shape := kindShapes[p.kind]
	for _, r := range p.primal {
		counts[r] = shape.primal
	}
	for _, r := range p.kicker {
		counts[r] = shape.kicker
	}
	return card.NewHandUnchecked(counts)
}

// NewPlayUnchecked 不做任何校验地构造一手牌型。
// 前提：调用方已自行证明 kind、primal、kickers 构成一手
// 合法的牌。违反前提不会报错，只会产出无意义的结果。
func NewPlayUnchecked(kind PlayKind, primal, kickers []card.Rank) Play {
	return Play{kind: kind, primal: primal, kicker: kickers}
}
