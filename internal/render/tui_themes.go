package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the chat interface
type TUITheme struct {
	Name        string
	Description string

	Surface lipgloss.Color
	Border  lipgloss.Color

	// UserBubble and BotBubble color the two sides of the transcript
	UserBubble lipgloss.Color
	BotBubble  lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// WPITheme uses the crimson and gray of the university the bot serves
	WPITheme = TUITheme{
		Name:        "wpi",
		Description: "WPI - Crimson and gray",

		Surface: lipgloss.Color("#1f1f1f"),
		Border:  lipgloss.Color("#a9b0b7"),

		UserBubble: lipgloss.Color("#ac2b37"),
		BotBubble:  lipgloss.Color("#a9b0b7"),

		Primary: lipgloss.Color("#ac2b37"),
		Accent:  lipgloss.Color("#e0565f"),
		Warning: lipgloss.Color("#e0af68"),
		Error:   lipgloss.Color("#ff5c5c"),

		Text:     lipgloss.Color("#f2f2f2"),
		TextDim:  lipgloss.Color("#8a8f94"),
		TextMute: lipgloss.Color("#4a4d50"),
	}

	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",

		Surface: lipgloss.Color("#24283b"),
		Border:  lipgloss.Color("#414868"),

		UserBubble: lipgloss.Color("#9ece6a"),
		BotBubble:  lipgloss.Color("#7aa2f7"),

		Primary: lipgloss.Color("#7aa2f7"),
		Accent:  lipgloss.Color("#bb9af7"),
		Warning: lipgloss.Color("#e0af68"),
		Error:   lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",

		Surface: lipgloss.Color("#313244"),
		Border:  lipgloss.Color("#45475a"),

		UserBubble: lipgloss.Color("#a6e3a1"),
		BotBubble:  lipgloss.Color("#89b4fa"),

		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#cba6f7"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),

		Text:     lipgloss.Color("#cdd6f4"),
		TextDim:  lipgloss.Color("#6c7086"),
		TextMute: lipgloss.Color("#45475a"),
	}

	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",

		Surface: lipgloss.Color("#3b4252"),
		Border:  lipgloss.Color("#4c566a"),

		UserBubble: lipgloss.Color("#a3be8c"),
		BotBubble:  lipgloss.Color("#88c0d0"),

		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Warning: lipgloss.Color("#ebcb8b"),
		Error:   lipgloss.Color("#bf616a"),

		Text:     lipgloss.Color("#eceff4"),
		TextDim:  lipgloss.Color("#7b88a1"),
		TextMute: lipgloss.Color("#4c566a"),
	}

	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",

		Surface: lipgloss.Color("#44475a"),
		Border:  lipgloss.Color("#6272a4"),

		UserBubble: lipgloss.Color("#50fa7b"),
		BotBubble:  lipgloss.Color("#8be9fd"),

		Primary: lipgloss.Color("#8be9fd"),
		Accent:  lipgloss.Color("#ff79c6"),
		Warning: lipgloss.Color("#f1fa8c"),
		Error:   lipgloss.Color("#ff5555"),

		Text:     lipgloss.Color("#f8f8f2"),
		TextDim:  lipgloss.Color("#6272a4"),
		TextMute: lipgloss.Color("#44475a"),
	}
)

var builtinTUIThemes = []TUITheme{
	WPITheme,
	TokyoNightTheme,
	CatppuccinMochaTheme,
	NordTheme,
	DraculaTheme,
}

// currentTUITheme holds the currently active TUI theme
var currentTUITheme = WPITheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name. Unknown names leave the
// current theme in place and return false.
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
	}
	return ok
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, theme := range builtinTUIThemes {
		if theme.Name == name {
			return theme, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	themes := make([]TUITheme, len(builtinTUIThemes))
	copy(themes, builtinTUIThemes)
	return themes
}

// TUIThemeNames returns just the theme names
func TUIThemeNames() []string {
	names := make([]string, len(builtinTUIThemes))
	for i, t := range builtinTUIThemes {
		names[i] = t.Name
	}
	return names
}
