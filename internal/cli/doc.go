// Package cli implements the pgmon command-line interface.
//
// The package is organized around Cobra commands, each delegating to
// dashboardCommand for the actual work:
//
//	pgmon            - activity dashboard (default)
//	pgmon activity   - live session snapshot (pg_stat_activity)
//	pgmon tables     - per-table access counters (pg_stat_user_tables)
//	pgmon version    - version information
//	pgmon completion - shell completion scripts
//
// # Startup Sequence
//
// dashboardCommand runs the common phases shared by activity/tables:
//
//  1. Load config (DATABASE_URL required, optional interval override)
//  2. Open and ping the database connection
//  3. Run the full-screen dashboard until quit or fatal error
//  4. Close the connection and map the outcome to an exit code
//
// # Exit Codes
//
// Zero on a user-requested quit; non-zero on any fatal error (missing
// configuration, connection failure, query failure, terminal failure).
// The terminal is restored before any error is printed to stderr.
package cli
