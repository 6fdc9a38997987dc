// Package view declares the monitored statistics views: which query to
// run against the server, which columns the result carries, and how the
// dashboard lays them out.
//
// Specs are fixed at compile time. The query text embeds its own
// ordering and row cap, so a fetch is always a single self-contained
// SELECT with no parameters.
package view

// Kind classifies a column for display normalization.
type Kind int

const (
	// Text columns render null as an empty string.
	Text Kind = iota
	// Numeric columns render null as "0".
	Numeric
)

// Column describes one display column: its header, its relative width
// weight, and how null values are normalized.
type Column struct {
	Title  string
	Weight int // percentage of the table width; weights in a spec sum to 100
	Kind   Kind
}

// Row is one display record: exactly one formatted string per column
// of the active spec.
type Row []string

// Spec is a static descriptor of a monitored view.
type Spec struct {
	Name       string // subcommand name, e.g. "activity"
	Title      string // banner title
	BoxTitle   string // table border title, the server-side view name
	Query      string // full query text including ORDER BY and LIMIT
	Columns    []Column
	ShowHeader bool // render a header row above the data rows
	Limit      int  // row cap, mirrors the LIMIT in Query
}

// Headers returns the column titles in display order.
func (s Spec) Headers() []string {
	titles := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		titles[i] = c.Title
	}
	return titles
}

// Activity returns the spec for the live session snapshot
// (pg_stat_activity). It renders without a header row; the view is
// compact enough that the border title carries the context.
func Activity() Spec {
	return Spec{
		Name:     "activity",
		Title:    "PostgreSQL Monitor",
		BoxTitle: "pg_stat_activity",
		Query:    "SELECT pid, usename, datname, state, query FROM pg_stat_activity ORDER BY pid LIMIT 10",
		Columns: []Column{
			{Title: "pid", Weight: 10, Kind: Numeric},
			{Title: "usename", Weight: 10, Kind: Text},
			{Title: "datname", Weight: 20, Kind: Text},
			{Title: "state", Weight: 10, Kind: Text},
			{Title: "query", Weight: 50, Kind: Text},
		},
		ShowHeader: false,
		Limit:      10,
	}
}

// TableStats returns the spec for the per-table access counter snapshot
// (pg_stat_user_tables), most-scanned tables first.
func TableStats() Spec {
	return Spec{
		Name:     "tables",
		Title:    "PostgreSQL Table Statistics",
		BoxTitle: "pg_stat_user_tables",
		Query: "SELECT relname, seq_scan, seq_tup_read, idx_scan, idx_tup_fetch, " +
			"n_tup_ins, n_tup_upd, n_tup_del, n_live_tup " +
			"FROM pg_stat_user_tables ORDER BY seq_scan DESC LIMIT 15",
		Columns: []Column{
			{Title: "relname", Weight: 20, Kind: Text},
			{Title: "seq_scan", Weight: 10, Kind: Numeric},
			{Title: "seq_tup_read", Weight: 10, Kind: Numeric},
			{Title: "idx_scan", Weight: 10, Kind: Numeric},
			{Title: "idx_tup_fetch", Weight: 10, Kind: Numeric},
			{Title: "n_tup_ins", Weight: 10, Kind: Numeric},
			{Title: "n_tup_upd", Weight: 10, Kind: Numeric},
			{Title: "n_tup_del", Weight: 10, Kind: Numeric},
			{Title: "n_live_tup", Weight: 10, Kind: Numeric},
		},
		ShowHeader: true,
		Limit:      15,
	}
}

// All returns every built-in spec, one per subcommand.
func All() []Spec {
	return []Spec{Activity(), TableStats()}
}
