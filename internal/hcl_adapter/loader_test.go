package hcl_adapter

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const siteHCL = `
site {
  address_suffix    = "Helsinki, Finland"
  mailer_sender     = "no-reply@omastadi.hel.fi"
  snoobi_account    = null
  use_mode          = "private"
  feedback_email    = "omastadi@hel.fi"
  auto_email_domain = "omastadi.hel.fi"
  suomifi_enabled   = true
  host_aliases      = ["omastadi.hel.fi", "www.omastadi.hel.fi"]
}
`

const localeHCL = `
locale "fi" {
  strings = {
    decidim = {
      menu = {
        home      = "Etusivu"
        processes = "Suunnitelmat"
      }
      count = 3
      flag  = true
      gone  = null
    }
  }
}

locale "en" {
  strings = { decidim = { menu = { home = "Home" } } }
}
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.hcl", siteHCL)
	writeFile(t, dir, "locales/all.hcl", localeHCL)

	site, err := NewLoader().Load(testCtx(), dir)
	require.NoError(t, err)

	want := &config.Site{
		AddressSuffix:   "Helsinki, Finland",
		MailerSender:    "no-reply@omastadi.hel.fi",
		UseMode:         config.UseModePrivate,
		WrapperClass:    "wrapper-default",
		ColorProfile:    "black",
		FeedbackEmail:   "omastadi@hel.fi",
		AutoEmailDomain: "omastadi.hel.fi",
		SuomifiEnabled:  true,
		DefaultLocale:   "fi",
		HostAliases:     []string{"omastadi.hel.fi", "www.omastadi.hel.fi"},
		Locales: map[string]map[string]string{
			"fi": {
				"decidim.menu.home":      "Etusivu",
				"decidim.menu.processes": "Suunnitelmat",
				"decidim.count":          "3",
				"decidim.flag":           "true",
			},
			"en": {"decidim.menu.home": "Home"},
		},
	}
	if diff := cmp.Diff(want, site); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NoFilesGivesDefaults(t *testing.T) {
	site, err := NewLoader().Load(testCtx(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), site)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"a.hcl": `site {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			files:   map[string]string{"a.hcl": `site { theme = "dark" }`},
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "two site blocks",
			files:   map[string]string{"a.hcl": `site {}`, "b.hcl": `site {}`},
			wantErr: "already declared in",
		},
		{
			name:    "bad use mode",
			files:   map[string]string{"a.hcl": `site { use_mode = "hidden" }`},
			wantErr: `use_mode must be "normal" or "private"`,
		},
		{
			name:    "default locale missing",
			files:   map[string]string{"a.hcl": `locale "en" { strings = { a = "b" } }`},
			wantErr: `default_locale "fi" has no locale block`,
		},
		{
			name:    "list leaf",
			files:   map[string]string{"a.hcl": `locale "fi" { strings = { a = ["b"] } }`},
			wantErr: "cannot be used as text",
		},
		{
			name:    "strings not an object",
			files:   map[string]string{"a.hcl": `locale "fi" { strings = "b" }`},
			wantErr: "strings must be an object",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}
			_, err := NewLoader().Load(testCtx(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_LocaleWithoutStrings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `locale "fi" {}`)

	site, err := NewLoader().Load(testCtx(), dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{"fi": {}}, site.Locales)
}
