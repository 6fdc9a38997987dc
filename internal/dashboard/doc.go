// Package dashboard implements the live-refreshing TUI for Postgres
// statistics views.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (active spec, latest rows, tick count)
//   - Update: Processes messages (keystrokes, tick events, fetch results)
//   - View: Renders the current state to a string for display
//
// # Refresh Cycle
//
// The dashboard operates on a strictly sequential tick-based cycle:
//
//  1. tickMsg fires at the configured interval (default 2s)
//  2. fetchCmd() runs the spec's query off the UI goroutine
//  3. rowsMsg arrives with the snapshot, updating Model.rows
//  4. View() re-renders the banner and table with the new data
//
// A fetch failure is fatal: fetchFailedMsg records the error and quits
// the program. Bubble Tea restores the terminal (raw mode, alternate
// screen) on every exit path, including this one; the recorded error is
// surfaced by the CLI layer afterwards.
//
// # Layout
//
// The screen splits vertically into a bordered title banner (10% of
// the height, minimum 3 rows) and a bordered data table. Column widths
// come from the view spec's percentage weights, not from content.
//
// # Keyboard
//
// Only quitting is supported:
//
//	q, Ctrl+C   - Quit
//
// Every other key is observed and discarded.
package dashboard
