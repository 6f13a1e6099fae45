package wapcdriver

import (
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/guestkit/postgres/driver"
)

// cell is one decoded value. Null cells carry no text.
type cell struct {
	text string
	null bool
}

// resultSet is a fully materialized host response.
type resultSet struct {
	columns []string
	rows    [][]cell
}

// decodeRows turns the host's JSON row data into a result set. Row objects
// are read in the column order the host reported; a missing key reads as
// null, matching a NULL the host chose not to encode.
func decodeRows(columns []string, data []byte) (driver.ResultSet, error) {
	rs := &resultSet{columns: columns}
	if len(data) == 0 {
		return rs, nil
	}

	var parser fastjson.Parser
	parsed, err := parser.ParseBytes(data)
	if err != nil {
		return nil, &driver.StatusError{
			Class:   driver.StatusMalformed,
			Message: fmt.Sprintf("undecodable row data: %v", err),
		}
	}

	rowValues, err := parsed.Array()
	if err != nil {
		return nil, &driver.StatusError{
			Class:   driver.StatusMalformed,
			Message: "row data is not a JSON array",
		}
	}

	rs.rows = make([][]cell, 0, len(rowValues))
	for _, rowValue := range rowValues {
		obj, err := rowValue.Object()
		if err != nil {
			return nil, &driver.StatusError{
				Class:   driver.StatusMalformed,
				Message: "row entry is not a JSON object",
			}
		}

		cells := make([]cell, len(columns))
		for i, name := range columns {
			value := obj.Get(name)
			if value == nil || value.Type() == fastjson.TypeNull {
				cells[i] = cell{null: true}
				continue
			}
			cells[i] = cell{text: cellText(value)}
		}
		rs.rows = append(rs.rows, cells)
	}

	return rs, nil
}

// cellText renders a JSON value as the cell's text. Strings are unquoted;
// numbers, booleans, and anything nested keep their JSON representation.
func cellText(value *fastjson.Value) string {
	if value.Type() == fastjson.TypeString {
		b, _ := value.StringBytes()
		return string(b)
	}
	return value.String()
}

func (r *resultSet) RowCount() int { return len(r.rows) }

func (r *resultSet) ColumnCount() int { return len(r.columns) }

func (r *resultSet) Value(row, col int) (string, bool) {
	if row < 0 || row >= len(r.rows) {
		return "", true
	}
	cells := r.rows[row]
	if col < 0 || col >= len(cells) || cells[col].null {
		return "", true
	}
	return cells[col].text, false
}

// Close drops the decoded rows. Repeat calls are no-ops.
func (r *resultSet) Close() error {
	r.rows = nil
	return nil
}

var _ driver.ResultSet = (*resultSet)(nil)
