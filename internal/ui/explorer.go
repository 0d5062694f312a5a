package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"doudizhu/card"
	"doudizhu/internal/config"
	"doudizhu/internal/logger"
	"doudizhu/rule"
)

// focusArea 当前聚焦的输入框
type focusArea int

const (
	focusHand focusArea = iota
	focusBeat
)

// searchableKinds 可搜索的牌型，按界面展示顺序排列
var searchableKinds = []rule.PlayKind{
	rule.Solo, rule.Pair, rule.Trio,
	rule.Chain, rule.PairsChain, rule.Airplane,
	rule.TrioWithSolo, rule.TrioWithPair,
	rule.AirplaneWithSolos, rule.AirplaneWithPairs,
	rule.Bomb, rule.FourWithDualSolo, rule.FourWithDualPair,
}

// ExplorerModel 牌型浏览器：输入一手牌，查看它的牌型判定，
// 并枚举其中包含的指定形状的所有牌
type ExplorerModel struct {
	cfg *config.Config

	handInput textinput.Model
	beatInput textinput.Model
	focus     focusArea

	kindIdx int

	hand    card.Hand
	handSet bool
	play    *rule.Play
	beat    *rule.Play

	results []card.Hand
	total   int
	errMsg  string

	width  int
	height int
}

// NewExplorerModel 创建牌型浏览器
func NewExplorerModel(cfg *config.Config) *ExplorerModel {
	handInput := textinput.New()
	handInput.Placeholder = "输入手牌，如 3334445566BR"
	handInput.CharLimit = 60
	handInput.Width = 40
	handInput.Focus()

	beatInput := textinput.New()
	beatInput.Placeholder = "要压过的牌（可留空）"
	beatInput.CharLimit = 30
	beatInput.Width = 40

	return &ExplorerModel{
		cfg:       cfg,
		handInput: handInput,
		beatInput: beatInput,
	}
}

func (m *ExplorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.toggleFocus()
			return m, nil
		case "up":
			m.cycleKind(-1)
			return m, nil
		case "down":
			m.cycleKind(1)
			return m, nil
		case "enter":
			m.commit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusHand {
		m.handInput, cmd = m.handInput.Update(msg)
	} else {
		m.beatInput, cmd = m.beatInput.Update(msg)
	}
	return m, cmd
}

func (m *ExplorerModel) toggleFocus() {
	if m.focus == focusHand {
		m.focus = focusBeat
		m.handInput.Blur()
		m.beatInput.Focus()
	} else {
		m.focus = focusHand
		m.beatInput.Blur()
		m.handInput.Focus()
	}
}

func (m *ExplorerModel) cycleKind(delta int) {
	m.kindIdx = (m.kindIdx + delta + len(searchableKinds)) % len(searchableKinds)
	m.refresh()
}

// Kind 当前选中的搜索牌型
func (m *ExplorerModel) Kind() rule.PlayKind {
	return searchableKinds[m.kindIdx]
}

// commit 解析两个输入框并重新搜索
func (m *ExplorerModel) commit() {
	m.errMsg = ""

	hand, err := card.Parse(strings.TrimSpace(m.handInput.Value()))
	if err != nil {
		m.errMsg = err.Error()
		m.handSet = false
		m.results = nil
		return
	}
	m.hand = hand
	m.handSet = true

	if play, ok := rule.HandPlay(hand); ok {
		m.play = &play
	} else {
		m.play = nil
	}

	m.beat = nil
	if text := strings.TrimSpace(m.beatInput.Value()); text != "" {
		beatHand, err := card.Parse(text)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		beatPlay, ok := rule.HandPlay(beatHand)
		if !ok {
			m.errMsg = fmt.Sprintf("%s 不是一手合法的牌", beatHand)
			return
		}
		m.beat = &beatPlay
	}

	m.refresh()
}

// refresh 按当前牌型重新枚举
func (m *ExplorerModel) refresh() {
	m.results = nil
	m.total = 0
	if !m.handSet {
		return
	}

	spec, ok := rule.SpecForKind(m.Kind(), 1, m.cfg.Search.MaxRun)
	if !ok {
		return
	}

	for _, h := range rule.Search(m.hand, spec) {
		if m.beat != nil {
			play, ok := rule.HandPlay(h)
			if !ok || !play.Beats(*m.beat) {
				continue
			}
		}
		m.total++
		if len(m.results) < m.cfg.UI.MaxResults {
			m.results = append(m.results, h)
		}
	}

	logger.LogInfo("search kind=%s hand=%s results=%d", m.Kind(), m.hand, m.total)
}

func (m *ExplorerModel) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle("🃏 斗地主牌型浏览器"))
	sb.WriteString("\n\n")

	sb.WriteString(LabelStyle.Render("手牌"))
	sb.WriteString("\n")
	sb.WriteString(BoxStyle.Render(m.handInput.View()))
	sb.WriteString("\n")

	if m.handSet {
		if m.play != nil {
			sb.WriteString(fmt.Sprintf("牌型判定: %s\n", KindStyle.Render(m.play.Kind().String())))
		} else {
			sb.WriteString(HintStyle.Render("牌型判定: 不是一手合法的牌") + "\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("要压过的牌"))
	sb.WriteString("\n")
	sb.WriteString(BoxStyle.Render(m.beatInput.View()))
	sb.WriteString("\n")
	if m.beat != nil {
		sb.WriteString(fmt.Sprintf("上家牌型: %s\n", KindStyle.Render(m.beat.Kind().String())))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("搜索牌型: %s %s %s\n",
		HintStyle.Render("↑"),
		KindStyle.Render(m.Kind().String()),
		HintStyle.Render("↓"),
	))

	if m.errMsg != "" {
		sb.WriteString(ErrorStyle.Render(m.errMsg))
		sb.WriteString("\n")
	}

	if m.handSet && m.errMsg == "" {
		sb.WriteString(CounterStyle.Render(fmt.Sprintf("共 %d 种", m.total)))
		sb.WriteString("\n")
		for _, h := range m.results {
			sb.WriteString(ResultStyle.Render("  " + h.String()))
			sb.WriteString("\n")
		}
		if m.total > len(m.results) {
			sb.WriteString(HintStyle.Render(fmt.Sprintf("  ……仅展示前 %d 种", len(m.results))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(HintStyle.Render("Tab 切换输入框 · Enter 确认 · ↑/↓ 切换牌型 · Esc 退出"))

	return DocStyle.Render(sb.String())
}
