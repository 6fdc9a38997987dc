package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableFrameHeight is the vertical overhead of the table region: top
// and bottom border plus the box title line.
const tableFrameHeight = 3

// minBannerHeight keeps the banner usable on short terminals.
const minBannerHeight = 3

// renderDashboard renders the complete two-region layout: a bordered
// title banner on top (10% of the screen) and the bordered data table
// below it (the rest).
func (m Model) renderDashboard() string {
	if m.width == 0 || m.height == 0 {
		// No WindowSizeMsg yet
		return "Connecting..."
	}

	banner := m.renderBanner()
	table := m.renderTableRegion()

	return lipgloss.JoinVertical(lipgloss.Left, banner, table)
}

// bannerRegionHeight returns the banner's share of the screen.
func (m Model) bannerRegionHeight() int {
	h := m.height / 10
	if h < minBannerHeight {
		h = minBannerHeight
	}
	return h
}

// tableRegionHeight returns the table's share of the screen.
func (m Model) tableRegionHeight() int {
	return m.height - m.bannerRegionHeight()
}

// tableWidth returns the usable content width inside the table border
// and padding.
func (m Model) tableWidth() int {
	return m.width - 4
}

// renderBanner renders the title region with the view title and
// refresh stats.
func (m Model) renderBanner() string {
	title := TitleStyle.Render(m.spec.Title)

	var age string
	switch s := m.SecondsSinceUpdate(); {
	case m.lastUpdate.IsZero():
		age = "waiting for first snapshot"
	case s == 0:
		age = "updated just now"
	case s == 1:
		age = "updated 1s ago"
	default:
		age = fmt.Sprintf("updated %ds ago", s)
	}
	stats := StatsStyle.Render(fmt.Sprintf(" | tick %d | %s | q to quit", m.ticks, age))

	return BannerStyle.
		Width(m.width - 2).
		Height(m.bannerRegionHeight() - 2).
		Render(title + stats)
}

// renderTableRegion renders the bordered data region: the monitored
// view's name, then the (viewport-clipped) table content.
func (m Model) renderTableRegion() string {
	boxTitle := BoxTitleStyle.Render(m.spec.BoxTitle)

	body := m.renderTable()
	if m.viewportReady {
		body = m.tableViewport.View()
	}

	return TableStyle.
		Width(m.width - 2).
		Height(m.tableRegionHeight() - 2).
		Render(boxTitle + "\n" + body)
}

// renderTable renders the header row (when the spec declares one)
// followed by exactly one line per fetched record.
func (m Model) renderTable() string {
	widths := m.columnWidths()

	var lines []string
	if m.spec.ShowHeader {
		lines = append(lines, HeaderRowStyle.Render(renderRow(m.spec.Headers(), widths)))
	}
	for _, row := range m.rows {
		lines = append(lines, DataRowStyle.Render(renderRow(row, widths)))
	}

	return strings.Join(lines, "\n")
}

// columnWidths converts the spec's percentage weights into absolute
// cell widths for the current terminal size. The last column absorbs
// rounding remainder so the row always fills the region.
func (m Model) columnWidths() []int {
	usable := m.tableWidth()
	if usable < len(m.spec.Columns) {
		usable = len(m.spec.Columns)
	}

	widths := make([]int, len(m.spec.Columns))
	used := 0
	for i, c := range m.spec.Columns {
		if i == len(m.spec.Columns)-1 {
			widths[i] = usable - used
			break
		}
		w := usable * c.Weight / 100
		if w < 1 {
			w = 1
		}
		widths[i] = w
		used += w
	}
	if widths[len(widths)-1] < 1 {
		widths[len(widths)-1] = 1
	}
	return widths
}

// renderRow lays out one record's cells at the given widths.
func renderRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(padOrTruncate(cell, w))
	}
	return b.String()
}

// padOrTruncate fits s into exactly width cells, truncating long
// content with an ellipsis. Statistics values are plain ASCII-ish
// strings, so rune count is a good enough width measure here.
func padOrTruncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return strings.Repeat(".", width)
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
