package query

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache keeps recently parsed templates keyed by their format string so hot
// query formats are scanned once and rendered many times.
type Cache struct {
	templates *lru.Cache[string, *Template]
}

// NewCache creates a template cache holding at most size entries. Size must
// be positive.
func NewCache(size int) (*Cache, error) {
	templates, err := lru.New[string, *Template](size)
	if err != nil {
		return nil, err
	}
	return &Cache{templates: templates}, nil
}

// Build renders format with args, parsing and caching the template on first
// use. The substitution contract is identical to Build.
func (c *Cache) Build(format string, args ...string) (string, error) {
	t, ok := c.templates.Get(format)
	if !ok {
		t = Parse(format)
		c.templates.Add(format, t)
	}
	return t.Render(args...)
}

// Len returns the number of cached templates.
func (c *Cache) Len() int { return c.templates.Len() }
