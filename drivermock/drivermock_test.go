package drivermock

import (
	"context"
	"errors"
	"testing"

	"github.com/guestkit/postgres/driver"
)

func TestConnectRecordsSettings(t *testing.T) {
	t.Parallel()

	mock, err := New(Config{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	settings := driver.Settings{Host: "localhost", Port: "5432", Database: "app"}
	if _, err := mock.Connect(context.Background(), settings); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	if mock.Settings != settings {
		t.Errorf("expected settings %+v, got %+v", settings, mock.Settings)
	}
}

func TestConnectFailure(t *testing.T) {
	t.Parallel()

	custom := errors.New("no route to host")

	testCases := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "Default Error",
			config:  Config{FailConnect: true},
			wantErr: ErrConnectFailed,
		},
		{
			name:    "Custom Error",
			config:  Config{FailConnect: true, ConnectError: custom},
			wantErr: custom,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := New(tc.config)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if _, err := mock.Connect(context.Background(), driver.Settings{}); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestQueryRecordingAndResult(t *testing.T) {
	t.Parallel()

	mock, err := New(Config{
		QueryValidator: func(sql string) error {
			if sql != "SELECT a, b FROM t" {
				return errors.New("query mismatch")
			}
			return nil
		},
		Result: &Result{
			Columns: []string{"a", "b"},
			Rows: [][]*string{
				{Text("1"), nil},
			},
		},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	session, err := mock.Connect(context.Background(), driver.Settings{})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	rs, err := session.Query(context.Background(), "SELECT a, b FROM t")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if len(mock.Queries) != 1 || mock.Queries[0] != "SELECT a, b FROM t" {
		t.Errorf("expected query recorded, got %v", mock.Queries)
	}
	if rs.RowCount() != 1 || rs.ColumnCount() != 2 {
		t.Fatalf("expected 1x2 result, got %dx%d", rs.RowCount(), rs.ColumnCount())
	}

	if text, null := rs.Value(0, 0); null || text != "1" {
		t.Errorf("expected cell (0,0) = 1, got (%q, null=%v)", text, null)
	}
	if _, null := rs.Value(0, 1); !null {
		t.Error("expected cell (0,1) to be null")
	}
	if _, null := rs.Value(5, 0); !null {
		t.Error("expected out-of-range cell to read as null")
	}
}

func TestQueryFailureStatus(t *testing.T) {
	t.Parallel()

	mock, err := New(Config{FailQuery: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	session, err := mock.Connect(context.Background(), driver.Settings{})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	_, err = session.Query(context.Background(), "SELECT 1")
	var statusErr *driver.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *driver.StatusError, got %v", err)
	}
	if statusErr.Class != driver.StatusNonFatal {
		t.Errorf("expected non-fatal class, got %v", statusErr.Class)
	}
}

func TestCloseCounting(t *testing.T) {
	t.Parallel()

	mock, err := New(Config{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	session, err := mock.Connect(context.Background(), driver.Settings{})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	rs, err := session.Query(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if err := rs.Close(); err != nil {
		t.Fatalf("ResultSet.Close returned error: %v", err)
	}
	if err := session.Close(context.Background()); err != nil {
		t.Fatalf("Session.Close returned error: %v", err)
	}
	if mock.ResultCloses != 1 || mock.SessionCloses != 1 {
		t.Errorf("expected 1 result close and 1 session close, got %d and %d",
			mock.ResultCloses, mock.SessionCloses)
	}

	if _, err := session.Query(context.Background(), "SELECT 1"); !errors.Is(err, ErrQueryClosed) {
		t.Fatalf("expected ErrQueryClosed after close, got %v", err)
	}
}
