package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the checklist TUI.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	selectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	regionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Gray

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")) // Magenta

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	helpStyle = lipgloss.NewStyle().PaddingTop(1)
)
