// Package ui implements the interactive play explorer interface.
package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss Styles
var (
	DocStyle     = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	KindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	ResultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	CounterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
