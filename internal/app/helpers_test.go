package app

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/overlaygo/internal/hcl_adapter"
	"github.com/specialistvlad/overlaygo/internal/registry"
	"github.com/specialistvlad/overlaygo/internal/testutil"
)

const siteHCL = `
site {
  address_suffix = "Helsinki, Finland"
  feedback_email = "omastadi@hel.fi"
  host_aliases   = ["omastadi.hel.fi"]
}
`

const finnishHCL = `
locale "fi" {
  strings = {
    decidim = {
      menu = {
        home             = "Etusivu"
        processes        = "Suunnitelmat"
        more_information = "Lisätietoa"
      }
    }
  }
}
`

// SetupAppTest writes files to a temporary config directory and creates an
// app for it with a debug logger writing to the returned buffer.
func SetupAppTest(t *testing.T, files map[string]string, appConfig *Config, modules ...registry.Module) (*App, *testutil.SafeBuffer, string) {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	if appConfig == nil {
		appConfig = &Config{}
	}
	appConfig.ConfigPath = dir
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"

	logs := &testutil.SafeBuffer{}
	testutil.DumpOnCleanup(t, logs)
	return NewApp(logs, appConfig, hcl_adapter.NewLoader(), modules...), logs, dir
}

func defaultFiles() map[string]string {
	return map[string]string{
		"site.hcl":       siteHCL,
		"locales/fi.hcl": finnishHCL,
	}
}

func configFile(dir, name string) string { return filepath.Join(dir, name) }
