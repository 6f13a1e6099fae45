package postgres

import (
	"context"
	"runtime"

	"github.com/guestkit/postgres/driver"
	"github.com/guestkit/postgres/driver/pgxdriver"
	"github.com/guestkit/postgres/outcome"
	"github.com/guestkit/postgres/query"
)

const (
	// defaultTemplateCacheSize bounds the per-connection template cache.
	defaultTemplateCacheSize = 128

	// maxOpenParams is the number of positional connection parameters:
	// host, port, dbname, user, password.
	maxOpenParams = 5
)

// failTooManyParams is surfaced when Open receives more than five
// positional parameters.
const failTooManyParams = "Too many connection parameters."

// Config controls how Open reaches the database capability.
type Config struct {
	// Driver overrides the database capability implementation. When nil,
	// the pgx driver speaks the PostgreSQL wire protocol directly.
	Driver driver.Driver

	// TemplateCacheSize bounds the per-connection query template cache.
	// Zero selects the default.
	TemplateCacheSize int
}

// Conn is an open database connection. It owns exactly one capability
// session, released exactly once when the Conn is collected; no explicit
// close is exposed.
type Conn struct {
	session   driver.Session
	templates *query.Cache
	open      bool
}

// Open establishes a connection using up to five positional parameters
// filled left to right: host, port, dbname, user, password. Parameters not
// provided default to the empty string, leaving the choice to the driver.
// A healthy session yields Success; anything else yields Failure carrying
// the capability's diagnostic text verbatim.
func Open(params ...string) outcome.Outcome[*Conn] {
	return OpenWith(Config{}, params...)
}

// OpenWith is Open with explicit configuration.
func OpenWith(config Config, params ...string) outcome.Outcome[*Conn] {
	if len(params) > maxOpenParams {
		return outcome.Failure[*Conn](failTooManyParams)
	}

	var settings driver.Settings
	fields := []*string{
		&settings.Host,
		&settings.Port,
		&settings.Database,
		&settings.User,
		&settings.Password,
	}
	for i, param := range params {
		*fields[i] = param
	}

	drv := config.Driver
	if drv == nil {
		pgx, err := pgxdriver.New(pgxdriver.Config{})
		if err != nil {
			return outcome.Failure[*Conn](err.Error())
		}
		drv = pgx
	}

	size := config.TemplateCacheSize
	if size <= 0 {
		size = defaultTemplateCacheSize
	}
	templates, err := query.NewCache(size)
	if err != nil {
		return outcome.Failure[*Conn](err.Error())
	}

	session, err := drv.Connect(context.Background(), settings)
	if err != nil {
		return outcome.Failure[*Conn](err.Error())
	}

	conn := &Conn{session: session, templates: templates, open: true}

	// Session release is lifecycle-bound: the finalizer is the only close.
	runtime.SetFinalizer(conn, (*Conn).finalize)

	return outcome.Success(conn)
}

// Query builds query text from format and args and submits it to the
// capability. A template failure returns immediately without touching the
// session; a query failure surfaces the capability's diagnostic verbatim
// and leaves the Conn reusable.
func (c *Conn) Query(format string, args ...string) outcome.Outcome[*Result] {
	if !c.open {
		return outcome.Failure[*Result]("connection is closed")
	}

	sql, err := c.templates.Build(format, args...)
	if err != nil {
		return outcome.Failure[*Result](err.Error())
	}

	rows, err := c.session.Query(context.Background(), sql)
	if err != nil {
		return outcome.Failure[*Result](err.Error())
	}

	return outcome.Success(newResult(rows))
}

func (c *Conn) finalize() {
	if !c.open {
		return
	}
	c.open = false
	_ = c.session.Close(context.Background())
}
