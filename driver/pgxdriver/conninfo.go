package pgxdriver

import (
	"strings"

	"github.com/guestkit/postgres/driver"
)

// connString assembles a libpq keyword/value connection string from the
// five positional settings. Empty settings are omitted entirely so pgconn
// falls back to its defaults for them.
func connString(settings driver.Settings) string {
	pairs := []struct {
		keyword string
		value   string
	}{
		{"host", settings.Host},
		{"port", settings.Port},
		{"dbname", settings.Database},
		{"user", settings.User},
		{"password", settings.Password},
	}

	var b strings.Builder
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.keyword)
		b.WriteByte('=')
		b.WriteString(quoteValue(p.value))
	}

	return b.String()
}

// quoteValue single-quotes a value when it contains characters that would
// break keyword/value parsing, escaping backslashes and quotes per libpq.
func quoteValue(value string) string {
	if !strings.ContainsAny(value, " '\\") {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('\'')
	return b.String()
}
