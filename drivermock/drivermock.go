package drivermock

import (
	"context"
	"errors"

	"github.com/guestkit/postgres/driver"
)

var (
	// ErrConnectFailed is returned by Connect when FailConnect is set
	// without a custom error.
	ErrConnectFailed = errors.New("connect failed")

	// ErrQueryClosed is returned when a query arrives on a closed session.
	ErrQueryClosed = errors.New("session is closed")
)

// Result describes the canned query result served by the mock. A nil cell
// is a database NULL.
type Result struct {
	// Columns are the column names of the result.
	Columns []string

	// Rows holds the cell grid; each row must have len(Columns) cells.
	Rows [][]*string
}

// Mock simulates the database capability with validation and configurable
// responses.
type Mock struct {
	// FailConnect makes Connect fail.
	FailConnect bool

	// ConnectError is the error Connect returns when FailConnect is set.
	ConnectError error

	// FailQuery makes Query fail.
	FailQuery bool

	// QueryError is the error Query returns when FailQuery is set.
	QueryError error

	// QueryValidator validates the query text passed to Query.
	QueryValidator func(sql string) error

	// Result is the canned result served by successful queries.
	Result *Result

	// Settings records the settings from the most recent Connect.
	Settings driver.Settings

	// Queries records every query observed, in order.
	Queries []string

	// SessionCloses counts Session.Close calls across all sessions.
	SessionCloses int

	// ResultCloses counts ResultSet.Close calls across all result sets.
	ResultCloses int
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// FailConnect makes Connect fail.
	FailConnect bool

	// ConnectError is the error Connect returns when FailConnect is set.
	ConnectError error

	// FailQuery makes Query fail.
	FailQuery bool

	// QueryError is the error Query returns when FailQuery is set.
	QueryError error

	// QueryValidator validates the query text passed to Query.
	QueryValidator func(sql string) error

	// Result is the canned result served by successful queries.
	Result *Result
}

// Text returns a non-null cell holding s.
func Text(s string) *string { return &s }

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		FailConnect:    config.FailConnect,
		ConnectError:   config.ConnectError,
		FailQuery:      config.FailQuery,
		QueryError:     config.QueryError,
		QueryValidator: config.QueryValidator,
		Result:         config.Result,
	}, nil
}

// Connect simulates session negotiation.
func (m *Mock) Connect(_ context.Context, settings driver.Settings) (driver.Session, error) {
	if m.FailConnect {
		if m.ConnectError != nil {
			return nil, m.ConnectError
		}
		return nil, ErrConnectFailed
	}

	m.Settings = settings
	return &session{mock: m}, nil
}

// session is a live mock session bound to its Mock.
type session struct {
	mock   *Mock
	closed bool
}

// Query validates, records, and answers a query.
func (s *session) Query(_ context.Context, sql string) (driver.ResultSet, error) {
	if s.closed {
		return nil, ErrQueryClosed
	}

	m := s.mock

	// Scripted failure first, mirroring a server that rejects everything.
	if m.FailQuery {
		if m.QueryError != nil {
			return nil, m.QueryError
		}
		return nil, &driver.StatusError{Class: driver.StatusNonFatal, Message: "query failed"}
	}

	if m.QueryValidator != nil {
		if err := m.QueryValidator(sql); err != nil {
			return nil, err
		}
	}

	m.Queries = append(m.Queries, sql)

	result := m.Result
	if result == nil {
		result = &Result{}
	}
	return &resultSet{mock: m, result: result}, nil
}

// Close marks the session closed. Repeat calls are counted but harmless.
func (s *session) Close(_ context.Context) error {
	s.closed = true
	s.mock.SessionCloses++
	return nil
}

// resultSet serves the canned grid.
type resultSet struct {
	mock   *Mock
	result *Result
	closed bool
}

func (r *resultSet) RowCount() int { return len(r.result.Rows) }

func (r *resultSet) ColumnCount() int { return len(r.result.Columns) }

func (r *resultSet) Value(row, col int) (string, bool) {
	if r.closed || row < 0 || row >= len(r.result.Rows) {
		return "", true
	}
	cells := r.result.Rows[row]
	if col < 0 || col >= len(cells) || cells[col] == nil {
		return "", true
	}
	return *cells[col], false
}

func (r *resultSet) Close() error {
	r.closed = true
	r.mock.ResultCloses++
	return nil
}

// Compile-time checks that the mock satisfies the capability interfaces.
var (
	_ driver.Driver    = (*Mock)(nil)
	_ driver.Session   = (*session)(nil)
	_ driver.ResultSet = (*resultSet)(nil)
)
