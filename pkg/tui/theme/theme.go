package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Banner BannerTheme
	Panel  PanelTheme
	Form   FormTheme
	Table  TableTheme
	Footer FooterTheme
}

// BannerTheme styles the single status line.
type BannerTheme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Busy    lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
}

// FormTheme styles the appointment form rows.
type FormTheme struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Choice       lipgloss.Style
	Placeholder  lipgloss.Style
	Button       lipgloss.Style
}

// TableTheme styles the appointment list.
type TableTheme struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme styles the help line.
type FooterTheme struct {
	Help lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Banner: BannerTheme{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Busy:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.Copy().BorderForeground(accent),
			Title:        lipgloss.NewStyle().Bold(true).Underline(true),
			Body:         lipgloss.NewStyle(),
		},
		Form: FormTheme{
			Label:        lipgloss.NewStyle().Foreground(muted),
			FocusedLabel: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Choice:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			Button:       lipgloss.NewStyle().Foreground(accent).Reverse(true).Padding(0, 1),
		},
		Table: TableTheme{
			Header:   lipgloss.NewStyle().Bold(true),
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(accent).Reverse(true),
			Empty:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Footer: FooterTheme{
			Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}
