package pgxdriver

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestkit/postgres/driver"
)

func TestConnString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings driver.Settings
		want     string
	}{
		{
			name:     "AllSettings",
			settings: driver.Settings{Host: "db.local", Port: "5432", Database: "app", User: "svc", Password: "hunter2"},
			want:     "host=db.local port=5432 dbname=app user=svc password=hunter2",
		},
		{
			name:     "EmptySettingsOmitted",
			settings: driver.Settings{Host: "localhost"},
			want:     "host=localhost",
		},
		{
			name:     "AllDefaults",
			settings: driver.Settings{},
			want:     "",
		},
		{
			name:     "PasswordWithSpaces",
			settings: driver.Settings{Password: "two words"},
			want:     "password='two words'",
		},
		{
			name:     "PasswordWithQuoteAndBackslash",
			settings: driver.Settings{Password: `it's\here`},
			want:     `password='it\'s\\here'`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, connString(tc.settings))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantClass driver.StatusClass
	}{
		{
			name:      "ServerError",
			err:       &pgconn.PgError{Severity: "ERROR", Code: "42601", Message: "syntax error"},
			wantClass: driver.StatusNonFatal,
		},
		{
			name:      "FatalError",
			err:       &pgconn.PgError{Severity: "FATAL", Code: "57P01", Message: "terminating connection"},
			wantClass: driver.StatusFatal,
		},
		{
			name:      "PanicError",
			err:       &pgconn.PgError{Severity: "PANIC", Code: "XX000", Message: "internal error"},
			wantClass: driver.StatusFatal,
		},
		{
			name:      "ProtocolDamage",
			err:       errors.New("unexpected message type"),
			wantClass: driver.StatusMalformed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := classify(tc.err)
			var statusErr *driver.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tc.wantClass, statusErr.Class)
			assert.NotEmpty(t, statusErr.Message)
		})
	}
}

func TestClassifyKeepsServerText(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Severity: "ERROR", Code: "42P01", Message: `relation "missing" does not exist`}
	err := classify(pgErr)

	var statusErr *driver.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, pgErr.Error(), statusErr.Message)
}

func TestResultSet(t *testing.T) {
	t.Parallel()

	rs := &resultSet{
		columns: 2,
		rows: [][][]byte{
			{[]byte("1"), []byte("alpha")},
			{[]byte("2"), nil},
		},
	}

	assert.Equal(t, 2, rs.RowCount())
	assert.Equal(t, 2, rs.ColumnCount())

	text, null := rs.Value(0, 1)
	require.False(t, null)
	assert.Equal(t, "alpha", text)

	_, null = rs.Value(1, 1)
	assert.True(t, null, "nil cell should read as null")

	_, null = rs.Value(9, 0)
	assert.True(t, null, "out-of-range row should read as null")
	_, null = rs.Value(0, 9)
	assert.True(t, null, "out-of-range column should read as null")

	require.NoError(t, rs.Close())
	assert.Equal(t, 0, rs.RowCount())
	_, null = rs.Value(0, 0)
	assert.True(t, null, "closed result should read as null")
	require.NoError(t, rs.Close(), "repeat close is a no-op")
}

func TestNew(t *testing.T) {
	t.Parallel()

	drv, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, drv)
}
