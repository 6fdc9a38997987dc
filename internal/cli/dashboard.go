package cli

import (
	"time"

	"github.com/rileyhilliard/pgmon/internal/config"
	"github.com/rileyhilliard/pgmon/internal/dashboard"
	"github.com/rileyhilliard/pgmon/internal/db"
	"github.com/rileyhilliard/pgmon/internal/logger"
	"github.com/rileyhilliard/pgmon/internal/view"
)

// dashboardCommand opens the connection and runs the TUI for the given
// view spec. interval == 0 means "use the configured default".
//
// Exit semantics: a clean quit returns nil (exit 0); any fatal error
// (config, connection, query, terminal) propagates and Execute turns
// it into a non-zero exit. The terminal is always restored before an
// error is printed.
func dashboardCommand(spec view.Spec, interval time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if interval == 0 {
		interval = cfg.Interval
	}

	source, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	log := logger.NewEnvLogger("[dashboard]")
	model := dashboard.NewModel(spec, source, interval, log)

	final, err := dashboard.Run(model)
	if err != nil {
		return err
	}

	// A fetch failure drains the TUI first, then surfaces here.
	if ferr := final.Err(); ferr != nil {
		return ferr
	}

	return nil
}
