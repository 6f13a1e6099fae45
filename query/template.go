package query

import (
	"errors"
	"strings"
)

// ErrNotEnoughArgs is returned when a format contains more placeholders than
// there are arguments to substitute. The message text is part of the binding
// contract and surfaced verbatim to callers.
var ErrNotEnoughArgs = errors.New("Not enough arguments for format.")

// Template is the parsed form of a placeholder format: the literal runs
// surrounding each `?`. A format with k placeholders parses into k+1
// segments, some possibly empty.
type Template struct {
	segments     []string
	placeholders int
}

// Parse splits format into its literal segments. It never fails; a format
// without placeholders parses into a single segment.
func Parse(format string) *Template {
	n := strings.Count(format, "?")
	if n == 0 {
		return &Template{segments: []string{format}}
	}

	segments := make([]string, 0, n+1)
	rest := format
	for {
		i := strings.IndexByte(rest, '?')
		if i < 0 {
			segments = append(segments, rest)
			break
		}
		segments = append(segments, rest[:i])
		rest = rest[i+1:]
	}

	return &Template{segments: segments, placeholders: n}
}

// Placeholders returns the number of `?` placeholders in the format.
func (t *Template) Placeholders() int { return t.placeholders }

// Render substitutes args into the template in left-to-right order. Fewer
// arguments than placeholders returns ErrNotEnoughArgs with no partial
// output; extra trailing arguments are ignored.
func (t *Template) Render(args ...string) (string, error) {
	if t.placeholders == 0 {
		return t.segments[0], nil
	}
	if len(args) < t.placeholders {
		return "", ErrNotEnoughArgs
	}

	size := 0
	for _, s := range t.segments {
		size += len(s)
	}
	for i := 0; i < t.placeholders; i++ {
		size += len(args[i])
	}

	var b strings.Builder
	b.Grow(size)
	for i, s := range t.segments {
		b.WriteString(s)
		if i < t.placeholders {
			b.WriteString(args[i])
		}
	}

	return b.String(), nil
}

// Build substitutes args into format in a single pass. A format without
// placeholders is returned unchanged regardless of argument count.
func Build(format string, args ...string) (string, error) {
	if strings.IndexByte(format, '?') < 0 {
		return format, nil
	}
	return Parse(format).Render(args...)
}
