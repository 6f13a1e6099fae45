package pgxdriver

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guestkit/postgres/driver"
)

// Config controls how the driver establishes sessions.
type Config struct {
	// ConnectTimeout bounds session negotiation. Zero means no bound
	// beyond the caller's context.
	ConnectTimeout time.Duration
}

// Driver implements driver.Driver over pgconn.
type Driver struct {
	config Config
}

// New creates a PostgreSQL driver.
func New(config Config) (*Driver, error) {
	return &Driver{config: config}, nil
}

// Connect negotiates a session with the server described by settings.
func (d *Driver) Connect(ctx context.Context, settings driver.Settings) (driver.Session, error) {
	if d.config.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.ConnectTimeout)
		defer cancel()
	}

	conn, err := pgconn.Connect(ctx, connString(settings))
	if err != nil {
		return nil, err
	}

	return &session{conn: conn}, nil
}

// session wraps a single live pgconn connection.
type session struct {
	conn *pgconn.PgConn
}

// Query executes sql and materializes the complete result. Multi-statement
// query text reports the last result, as the simple protocol does.
func (s *session) Query(ctx context.Context, sql string) (driver.ResultSet, error) {
	results, err := s.conn.Exec(ctx, sql).ReadAll()
	if err != nil {
		return nil, classify(err)
	}
	for _, result := range results {
		if result.Err != nil {
			return nil, classify(result.Err)
		}
	}

	// An empty query string produces no results at all.
	if len(results) == 0 {
		return &resultSet{}, nil
	}

	last := results[len(results)-1]
	return &resultSet{columns: len(last.FieldDescriptions), rows: last.Rows}, nil
}

// Close releases the session. pgconn tolerates repeat closes.
func (s *session) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// classify maps pgconn failures onto the capability's status classes.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		class := driver.StatusNonFatal
		if pgErr.Severity == "FATAL" || pgErr.Severity == "PANIC" {
			class = driver.StatusFatal
		}
		return &driver.StatusError{Class: class, Message: pgErr.Error()}
	}

	// Anything the client could not decode as a server error is protocol
	// damage.
	return &driver.StatusError{Class: driver.StatusMalformed, Message: err.Error()}
}

// resultSet is a fully materialized query result. Cell values follow
// pgconn's convention of nil for NULL.
type resultSet struct {
	columns int
	rows    [][][]byte
}

func (r *resultSet) RowCount() int { return len(r.rows) }

func (r *resultSet) ColumnCount() int { return r.columns }

func (r *resultSet) Value(row, col int) (string, bool) {
	if row < 0 || row >= len(r.rows) {
		return "", true
	}
	cells := r.rows[row]
	if col < 0 || col >= len(cells) || cells[col] == nil {
		return "", true
	}
	return string(cells[col]), false
}

// Close drops the materialized rows. Repeat calls are no-ops.
func (r *resultSet) Close() error {
	r.rows = nil
	return nil
}

var (
	_ driver.Driver    = (*Driver)(nil)
	_ driver.Session   = (*session)(nil)
	_ driver.ResultSet = (*resultSet)(nil)
)
