// Package tui provides the terminal chat widget for gompei.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/gompei/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder     lipgloss.Color
	colorUserBubble lipgloss.Color
	colorBotBubble  lipgloss.Color
	colorPrimary    lipgloss.Color
	colorAccent     lipgloss.Color
	colorWarning    lipgloss.Color
	colorError      lipgloss.Color
	colorText       lipgloss.Color
	colorTextDim    lipgloss.Color
	colorTextMute   lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	messagesAreaStyle lipgloss.Style

	userBubbleStyle lipgloss.Style
	userLabelStyle  lipgloss.Style
	botBubbleStyle  lipgloss.Style
	botLabelStyle   lipgloss.Style

	// thinkingBubbleStyle is the transient bubble shown while awaiting a reply
	thinkingBubbleStyle lipgloss.Style

	inputPanelStyle    lipgloss.Style
	sendButtonStyle    lipgloss.Style
	sendButtonFocused  lipgloss.Style
	sendButtonDisabled lipgloss.Style

	loadingStyle lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	statusOkStyle   lipgloss.Style
	statusWarnStyle lipgloss.Style
	statusErrStyle  lipgloss.Style

	welcomeStyle      lipgloss.Style
	welcomeTitleStyle lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorUserBubble = theme.UserBubble
	colorBotBubble = theme.BotBubble
	colorPrimary = theme.Primary
	colorAccent = theme.Accent
	colorWarning = theme.Warning
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorUserBubble).
		Foreground(colorText).
		Padding(0, 1)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorUserBubble).
		Bold(true)

	botBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBotBubble).
		Foreground(colorText).
		Padding(0, 1)

	botLabelStyle = lipgloss.NewStyle().
		Foreground(colorBotBubble).
		Bold(true)

	thinkingBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorTextMute).
		Foreground(colorTextDim).
		Italic(true).
		Padding(0, 1)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	sendButtonStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorTextMute).
		Padding(0, 2)

	sendButtonFocused = sendButtonStyle.
		Background(colorPrimary).
		Bold(true)

	sendButtonDisabled = sendButtonStyle.
		Foreground(colorTextDim)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusOkStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	statusWarnStyle = lipgloss.NewStyle().
		Foreground(colorWarning)

	statusErrStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	welcomeStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Align(lipgloss.Center)
}
