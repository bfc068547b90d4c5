package views

import "github.com/charmbracelet/lipgloss"

// Theme bundles the style palette for one rendering pass. The dark flag is
// the persisted preference; everything else derives from it.
type Theme struct {
	Dark bool

	Header    lipgloss.Style
	Panel     lipgloss.Style
	Row       lipgloss.Style
	RowDone   lipgloss.Style
	Cursor    lipgloss.Style
	Empty     lipgloss.Style
	Counter   lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Footer    lipgloss.Style

	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

func LightTheme() Theme {
	return Theme{
		Dark:      false,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("18")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		RowDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		Counter:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		TabActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("5")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func DarkTheme() Theme {
	return Theme{
		Dark:      true,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		RowDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		Counter:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TabActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("13")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
