package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/pgmon/internal/logger"
	"github.com/rileyhilliard/pgmon/internal/view"
)

// Fetcher produces one snapshot of the monitored view per call.
// Satisfied by *db.Source; tests substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context, spec view.Spec) ([]view.Row, error)
}

// Model is the Bubble Tea model for the dashboard. It drives a strictly
// sequential refresh cycle: fetch, render, wait out the interval, check
// input. The fetch runs as a command off the UI goroutine, so a slow
// query never blocks quit handling, but its result is applied as a
// single message before the next cycle starts.
type Model struct {
	spec     view.Spec
	source   Fetcher
	interval time.Duration
	log      logger.Logger

	rows       []view.Row
	err        error
	ticks      int // completed fetch+render cycles
	lastUpdate time.Time
	width      int
	height     int
	quitting   bool

	// Table region viewport; clips content that outgrows the region.
	tableViewport viewport.Model
	viewportReady bool
}

// tickMsg signals the start of the next refresh cycle.
type tickMsg time.Time

// rowsMsg carries a fresh snapshot from the fetcher.
type rowsMsg struct {
	rows []view.Row
	time time.Time
}

// fetchFailedMsg carries a fatal fetch error. There is no retry: the
// dashboard drains and the error surfaces after the terminal is restored.
type fetchFailedMsg struct {
	err error
}

// NewModel creates a dashboard model for the given view spec.
func NewModel(spec view.Spec, source Fetcher, interval time.Duration, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	return Model{
		spec:     spec,
		source:   source,
		interval: interval,
		log:      log,
	}
}

// Init triggers the first fetch and starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(),
		m.tickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTableViewport()
		m.tableViewport.SetContent(m.renderTable())

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.tickCmd(), m.fetchCmd())

	case rowsMsg:
		m.rows = msg.rows
		m.lastUpdate = msg.time
		m.ticks++
		if m.viewportReady {
			m.tableViewport.SetContent(m.renderTable())
		}

	case fetchFailedMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Err returns the fatal error that ended the run, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the model has entered its drain state.
func (m Model) Quitting() bool {
	return m.quitting
}

// Ticks returns the number of completed fetch+render cycles.
func (m Model) Ticks() int {
	return m.ticks
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// successful fetch.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd returns a command that fetches one snapshot of the view.
func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.source.Fetch(context.Background(), m.spec)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return rowsMsg{rows: rows, time: time.Now()}
	}
}

// resizeTableViewport sizes the table region viewport to the space left
// below the banner, inside the table border and padding.
func (m *Model) resizeTableViewport() {
	contentWidth := m.tableWidth()
	contentHeight := m.tableRegionHeight() - tableFrameHeight
	if contentWidth < 1 {
		contentWidth = 1
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	if !m.viewportReady {
		m.tableViewport = viewport.New(contentWidth, contentHeight)
		m.viewportReady = true
	} else {
		m.tableViewport.Width = contentWidth
		m.tableViewport.Height = contentHeight
	}
}
