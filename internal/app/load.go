package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/i18n"
)

// loadSite reads the site configuration from the configured path.
func (a *App) loadSite(ctx context.Context) (*config.Site, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading site configuration...", "config_path", a.config.ConfigPath)

	site, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}

	logger.Info("Site configuration loaded.", "use_mode", site.UseMode, "locale", site.DefaultLocale, "locales", len(site.Locales))
	return site, nil
}

// textTable builds the translation table served for site.
func textTable(site *config.Site) *i18n.Table {
	return &i18n.Table{Locale: site.DefaultLocale, Strings: site.Locales}
}
