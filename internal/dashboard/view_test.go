package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pgmon/internal/logger"
	"github.com/rileyhilliard/pgmon/internal/view"
)

func sizedModel(t *testing.T, spec view.Spec, rows []view.Row, width, height int) Model {
	t.Helper()
	m := NewModel(spec, &stubFetcher{}, 2*time.Second, logger.Noop())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = updated.(Model)

	updated, _ = m.Update(rowsMsg{rows: rows, time: time.Now()})
	return updated.(Model)
}

func tableRows(n int) []view.Row {
	spec := view.TableStats()
	rows := make([]view.Row, n)
	for i := range rows {
		row := make(view.Row, len(spec.Columns))
		row[0] = "users"
		for j := 1; j < len(row); j++ {
			row[j] = "0"
		}
		rows[i] = row
	}
	return rows
}

func TestRenderTable_RowCountWithoutHeader(t *testing.T) {
	rows := []view.Row{
		{"101", "alice", "appdb", "active", "SELECT 1"},
		{"102", "bob", "appdb", "idle", "COMMIT"},
		{"103", "", "appdb", "", ""},
	}
	m := sizedModel(t, view.Activity(), rows, 120, 40)

	table := m.renderTable()
	lines := strings.Split(table, "\n")

	assert.Len(t, lines, 3, "activity view renders exactly N data rows, no header")
}

func TestRenderTable_RowCountWithHeader(t *testing.T) {
	m := sizedModel(t, view.TableStats(), tableRows(5), 160, 50)

	table := m.renderTable()
	lines := strings.Split(table, "\n")

	assert.Len(t, lines, 6, "tables view renders a header row plus N data rows")
	assert.Contains(t, lines[0], "relname", "first line is the header row")
}

func TestRenderTable_EmptySnapshot(t *testing.T) {
	m := sizedModel(t, view.Activity(), nil, 120, 40)

	assert.Empty(t, m.renderTable(), "no rows, no lines")
}

func TestColumnWidths_FillUsableWidth(t *testing.T) {
	for _, spec := range view.All() {
		t.Run(spec.Name, func(t *testing.T) {
			m := sizedModel(t, spec, nil, 120, 40)

			widths := m.columnWidths()
			require.Len(t, widths, len(spec.Columns))

			sum := 0
			for _, w := range widths {
				assert.GreaterOrEqual(t, w, 1)
				sum += w
			}
			assert.Equal(t, m.tableWidth(), sum, "widths must exactly fill the table region")
		})
	}
}

func TestColumnWidths_TinyTerminal(t *testing.T) {
	m := sizedModel(t, view.TableStats(), nil, 8, 10)

	widths := m.columnWidths()
	for _, w := range widths {
		assert.GreaterOrEqual(t, w, 1, "every column keeps at least one cell")
	}
}

func TestBannerAndTableSplit(t *testing.T) {
	m := sizedModel(t, view.Activity(), nil, 100, 40)

	assert.Equal(t, 4, m.bannerRegionHeight(), "banner takes 10%% of a 40-row screen")
	assert.Equal(t, 36, m.tableRegionHeight())
}

func TestBannerMinimumHeight(t *testing.T) {
	m := sizedModel(t, view.Activity(), nil, 100, 12)

	assert.Equal(t, minBannerHeight, m.bannerRegionHeight())
}

func TestRenderDashboard_ContainsTitleAndBoxTitle(t *testing.T) {
	m := sizedModel(t, view.Activity(), activityRows(), 120, 40)

	out := m.renderDashboard()

	assert.Contains(t, out, "PostgreSQL Monitor")
	assert.Contains(t, out, "pg_stat_activity")
	assert.Contains(t, out, "q to quit")
}

func TestRenderDashboard_BeforeFirstWindowSize(t *testing.T) {
	m := NewModel(view.Activity(), &stubFetcher{}, 2*time.Second, logger.Noop())

	assert.Equal(t, "Connecting...", m.renderDashboard())
}

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{
			name:  "short value is padded",
			in:    "42",
			width: 5,
			want:  "42   ",
		},
		{
			name:  "exact fit is unchanged",
			in:    "hello",
			width: 5,
			want:  "hello",
		},
		{
			name:  "long value truncates with ellipsis",
			in:    "SELECT * FROM users",
			width: 8,
			want:  "SELECT …",
		},
		{
			name:  "empty value becomes spaces",
			in:    "",
			width: 3,
			want:  "   ",
		},
		{
			name:  "width one",
			in:    "abc",
			width: 1,
			want:  ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padOrTruncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Len(t, []rune(got), tt.width)
		})
	}
}

func TestRenderRow_MissingFieldsDegradeToEmpty(t *testing.T) {
	// A record with fewer fields than columns renders blanks, not a panic
	out := renderRow([]string{"only"}, []int{6, 6, 6})

	assert.Len(t, []rune(out), 18)
	assert.Contains(t, out, "only")
}
