package config

import "sync/atomic"

// Current holds the live Site. Readers always see a complete value.
//
// A reload stages the new Site first. Load keeps returning the live one
// until Commit, while Next lets the reload cycle itself read the staged one.
type Current struct {
	site   atomic.Pointer[Site]
	staged atomic.Pointer[Site]
}

// NewCurrent creates a holder serving s.
func NewCurrent(s *Site) *Current {
	c := &Current{}
	c.Store(s)
	return c
}

// Load returns the live Site. It never returns nil.
func (c *Current) Load() *Site { return c.site.Load() }

// Store swaps in s. A nil s stores the defaults.
func (c *Current) Store(s *Site) {
	if s == nil {
		s = Default()
	}
	c.site.Store(s)
}

// Stage holds s until Commit or Discard.
func (c *Current) Stage(s *Site) {
	if s == nil {
		s = Default()
	}
	c.staged.Store(s)
}

// Next returns the staged Site, or the live one when nothing is staged.
func (c *Current) Next() *Site {
	if s := c.staged.Load(); s != nil {
		return s
	}
	return c.Load()
}

// Commit makes the staged Site live.
func (c *Current) Commit() {
	if s := c.staged.Swap(nil); s != nil {
		c.site.Store(s)
	}
}

// Discard drops the staged Site.
func (c *Current) Discard() { c.staged.Store(nil) }
