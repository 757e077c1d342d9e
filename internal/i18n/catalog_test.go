package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Translate(t *testing.T) {
	c := NewCatalog(&Table{
		Locale: "fi",
		Strings: map[string]map[string]string{
			"fi": {"decidim.menu.home": "Etusivu"},
			"en": {"decidim.menu.home": "Home"},
		},
	})

	assert.Equal(t, "fi", c.Locale())
	assert.Equal(t, "Etusivu", c.Translate("menu.home", "decidim"))
	assert.True(t, c.Has("menu.home", "decidim"))
	assert.Equal(t, "translation missing: fi.decidim.menu.pages", c.Translate("menu.pages", "decidim"))
	assert.False(t, c.Has("menu.pages", "decidim"))
	assert.Equal(t, "translation missing: fi.plain", c.Translate("plain", ""))
}

func TestCatalog_Replace(t *testing.T) {
	c := NewCatalog(nil)
	assert.Equal(t, "translation missing: decidim.menu.home", c.Translate("menu.home", "decidim"))

	c.Replace(&Table{Locale: "en", Strings: map[string]map[string]string{"en": {"decidim.menu.home": "Home"}}})
	assert.Equal(t, "Home", c.Translate("menu.home", "decidim"))
}

func TestCatalog_Staging(t *testing.T) {
	fi := &Table{Locale: "fi", Strings: map[string]map[string]string{"fi": {"decidim.menu.home": "Etusivu"}}}
	en := &Table{Locale: "en", Strings: map[string]map[string]string{"en": {"decidim.menu.home": "Home"}}}
	c := NewCatalog(fi)
	next := c.Upcoming()

	c.Stage(en)
	assert.Equal(t, "Etusivu", c.Translate("menu.home", "decidim"))
	assert.Equal(t, "Home", next.Translate("menu.home", "decidim"))

	c.Discard()
	assert.Equal(t, "Etusivu", next.Translate("menu.home", "decidim"))

	c.Stage(en)
	c.Commit()
	assert.Equal(t, "en", c.Locale())
	assert.Equal(t, "Home", c.Translate("menu.home", "decidim"))
	assert.Equal(t, "Home", next.Translate("menu.home", "decidim"))
}
