package dashboard

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorBorder        = lipgloss.Color("#2A2A4A") // glass border (purple tint)
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // purple-gray
	ColorTitle         = lipgloss.Color("#FFD700") // banner title yellow
	ColorAccent        = lipgloss.Color("#FF2E97") // header accent
)

// Base styles for the dashboard
var (
	// BannerStyle frames the title region at the top of the screen.
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// TableStyle frames the data region below the banner.
	TableStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// TitleStyle renders the banner title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true)

	// StatsStyle renders the tick counter and refresh age next to the title.
	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	// BoxTitleStyle renders the monitored view name above the data rows.
	BoxTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// HeaderRowStyle renders the column header row when the spec declares one.
	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// DataRowStyle renders ordinary data rows.
	DataRowStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)
)
