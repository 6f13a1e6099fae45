package driver

import "context"

// Settings holds the five positional connection parameters. All values are
// text; empty fields fall back to the implementation's own defaults.
type Settings struct {
	// Host is the server host name or address.
	Host string

	// Port is the server port, as text.
	Port string

	// Database is the database name.
	Database string

	// User is the login role.
	User string

	// Password is the login credential.
	Password string
}

// Driver negotiates database sessions.
type Driver interface {
	// Connect establishes a session. The returned error text is the
	// capability's own diagnostic and is surfaced verbatim to callers.
	Connect(ctx context.Context, settings Settings) (Session, error)
}

// Session is a live database session owned by exactly one connection.
type Session interface {
	// Query submits query text for execution and materializes the result.
	// Failures are reported as *StatusError.
	Query(ctx context.Context, sql string) (ResultSet, error)

	// Close releases the session. Implementations tolerate repeat calls.
	Close(ctx context.Context) error
}

// ResultSet is a completed query result held in memory. All values are
// text; a null cell is reported through the null flag, not an empty string.
type ResultSet interface {
	// RowCount returns the number of rows in the result.
	RowCount() int

	// ColumnCount returns the number of columns in the result.
	ColumnCount() int

	// Value returns the text of the cell at (row, col) and whether the
	// cell is null. Indices outside the result report a null cell.
	Value(row, col int) (text string, null bool)

	// Close releases the result. Implementations tolerate repeat calls.
	Close() error
}
