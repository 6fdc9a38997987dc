package dashboard

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/pgmon/internal/errors"
)

// Run starts the dashboard TUI and blocks until the user quits or a
// fatal error drains it. The terminal is switched to raw mode with an
// alternate screen for the duration; Bubble Tea restores both on every
// exit path. Returns the final model so the caller can inspect the
// fatal error, if any.
func Run(m Model) (Model, error) {
	// The dashboard owns the whole terminal; refuse to start without one.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return m, errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"pgmon renders a full-screen dashboard and cannot run in a pipe")
	}

	program := tea.NewProgram(m, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return m, errors.WrapWithCode(err, errors.ErrTerminal,
			"Terminal rendering failed", "")
	}

	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
