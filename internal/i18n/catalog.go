// Package i18n is the in-memory localized text lookup used by the site
// layer. Strings come from the site configuration; reading locale files is
// the host's business, not this package's.
package i18n

import (
	"strings"
	"sync/atomic"
)

// Table holds flattened "scope.key" strings per locale.
type Table struct {
	Locale  string
	Strings map[string]map[string]string // locale -> dotted key -> text
}

func (t *Table) lookup(key, scope string) (string, string, bool) {
	full := key
	if scope != "" {
		full = scope + "." + key
	}
	text, ok := t.Strings[t.Locale][full]
	return text, full, ok
}

// translate renders a missing string the way the host renders it, so gaps
// are visible instead of blank.
func (t *Table) translate(key, scope string) string {
	text, full, ok := t.lookup(key, scope)
	if ok {
		return text
	}
	return "translation missing: " + strings.Trim(t.Locale+"."+full, ".")
}

// Catalog serves translations from the current Table. Replace swaps the
// table atomically so a reload never exposes a half-filled catalog.
//
// A reload stages its table; Upcoming translates from it while the reload
// runs and Commit makes it current.
type Catalog struct {
	table  atomic.Pointer[Table]
	staged atomic.Pointer[Table]
}

// NewCatalog creates a catalog serving t.
func NewCatalog(t *Table) *Catalog {
	c := &Catalog{}
	c.Replace(t)
	return c
}

// Replace swaps in a new table.
func (c *Catalog) Replace(t *Table) {
	if t == nil {
		t = &Table{}
	}
	c.table.Store(t)
}

// Stage holds t until Commit or Discard.
func (c *Catalog) Stage(t *Table) {
	if t == nil {
		t = &Table{}
	}
	c.staged.Store(t)
}

// Commit makes the staged table current.
func (c *Catalog) Commit() {
	if t := c.staged.Swap(nil); t != nil {
		c.table.Store(t)
	}
}

// Discard drops the staged table.
func (c *Catalog) Discard() { c.staged.Store(nil) }

// Locale returns the locale translations are served in.
func (c *Catalog) Locale() string {
	return c.table.Load().Locale
}

// Translate looks up key within scope in the current table.
func (c *Catalog) Translate(key, scope string) string {
	return c.table.Load().translate(key, scope)
}

// Has reports whether key within scope is translated.
func (c *Catalog) Has(key, scope string) bool {
	_, _, ok := c.table.Load().lookup(key, scope)
	return ok
}

// Upcoming translates from the staged table when there is one, from the
// current table otherwise.
type Upcoming struct {
	c *Catalog
}

// Upcoming returns the view of c a reload cycle translates with.
func (c *Catalog) Upcoming() Upcoming { return Upcoming{c: c} }

// Translate looks up key within scope.
func (u Upcoming) Translate(key, scope string) string {
	t := u.c.staged.Load()
	if t == nil {
		t = u.c.table.Load()
	}
	return t.translate(key, scope)
}
