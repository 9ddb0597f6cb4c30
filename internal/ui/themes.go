package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour scheme of the report.
// Each field is a lipgloss.TerminalColor suitable for use with
// lipgloss.Style.Foreground() and BorderForeground().
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Text is the default foreground.
	Text lipgloss.TerminalColor
	// Border frames panels and tiles.
	Border lipgloss.TerminalColor
	// Accent highlights headers and selected elements.
	Accent lipgloss.TerminalColor
	// Success marks completed operations.
	Success lipgloss.TerminalColor
	// Warning marks pending or degraded states.
	Warning lipgloss.TerminalColor
	// Error marks failed operations.
	Error lipgloss.TerminalColor
	// Dim is used for secondary labels.
	Dim lipgloss.TerminalColor
	// Info is used for informational values.
	Info lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
		Info:    lipgloss.Color("#4488FF"),
	}

	// LightTheme uses darker colours for light backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Text:    lipgloss.Color("#1A1A1A"),
		Border:  lipgloss.Color("#005FAF"),
		Accent:  lipgloss.Color("#0057B8"),
		Success: lipgloss.Color("#2E7D32"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#585858"),
		Info:    lipgloss.Color("#5F00AF"),
	}

	// NoColorTheme disables all colours.
	// lipgloss.NoColor{} renders text with the terminal's default colours.
	NoColorTheme = Theme{
		Name:    "none",
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the names accepted by SetTheme.
func ThemeNames() []string {
	return []string{DarkTheme.Name, LightTheme.Name, NoColorTheme.Name}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Unknown names default to the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case LightTheme.Name:
		currentTheme = LightTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the theme from the configured name, the noColor flag and
// the environment. It respects the NO_COLOR environment variable
// (https://no-color.org/): if noColor is true or NO_COLOR is set, colours are
// disabled.
func InitTheme(name string, noColor bool) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}
