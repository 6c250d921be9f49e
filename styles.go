package main

import "github.com/charmbracelet/lipgloss"

// UI styles for the selector
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a1a")).
			Background(lipgloss.Color("#7DCFFF"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c0c0"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	checkboxChecked   = "[x]"
	checkboxUnchecked = "[ ]"

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ECE6A")).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true).
			MarginTop(2)

	selectedCountStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B"))

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DCFFF"))

	searchFilterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ECE6A"))

	scrollStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7DCFFF")).
			Padding(0, 2).
			MarginTop(1)

	dialogWarnStyle = dialogStyle.
			BorderForeground(lipgloss.Color("#E0AF68"))

	dialogErrorStyle = dialogStyle.
				BorderForeground(lipgloss.Color("#FF6B6B"))

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)
