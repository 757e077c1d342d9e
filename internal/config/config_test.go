package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, UseModeNormal, s.UseMode)
	assert.Equal(t, "wrapper-default", s.WrapperClass)
	assert.Equal(t, "black", s.ColorProfile)
	assert.Equal(t, "fi", s.DefaultLocale)
	assert.NotNil(t, s.Locales)
	assert.NoError(t, s.Validate())
	assert.False(t, s.Private())
}

func TestValidate(t *testing.T) {
	s := Default()
	s.UseMode = "hidden"
	s.Locales["en"] = map[string]string{}
	s.Locales["not a tag"] = map[string]string{}
	s.HostAliases = []string{"omastadi.hel.fi", ""}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `use_mode must be "normal" or "private", got "hidden"`)
	assert.Contains(t, err.Error(), `default_locale "fi" has no locale block`)
	assert.Contains(t, err.Error(), "host_aliases must not contain empty names")
	assert.Contains(t, err.Error(), `locale "not a tag" is not a language tag`)
	assert.NotContains(t, err.Error(), `locale "en" is not`)
}

func TestCurrent(t *testing.T) {
	c := NewCurrent(nil)
	require.NotNil(t, c.Load())
	assert.Equal(t, DefaultLocale, c.Load().DefaultLocale)

	private := Default()
	private.UseMode = UseModePrivate
	c.Store(private)
	assert.True(t, c.Load().Private())
}

func TestCurrent_Staging(t *testing.T) {
	live := Default()
	c := NewCurrent(live)

	next := Default()
	next.SuomifiEnabled = true
	c.Stage(next)
	assert.Same(t, live, c.Load(), "staged site is not live")
	assert.Same(t, next, c.Next())

	c.Discard()
	assert.Same(t, live, c.Next())
	c.Commit()
	assert.Same(t, live, c.Load(), "commit without a staged site keeps the live one")

	c.Stage(next)
	c.Commit()
	assert.Same(t, next, c.Load())
	assert.Same(t, next, c.Next())
}
