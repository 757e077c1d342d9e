package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/i18n"
	"github.com/specialistvlad/overlaygo/internal/livereload"
	"github.com/specialistvlad/overlaygo/internal/menu"
	"github.com/specialistvlad/overlaygo/internal/navigation"
	"github.com/specialistvlad/overlaygo/internal/registry"
	"github.com/specialistvlad/overlaygo/modules/mainmenu"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	site     *config.Current
	text     *i18n.Catalog
	menu     *menu.Slot
	host     *host.Platform
	registry *registry.Registry
	notifier *livereload.Notifier

	reloadMu sync.Mutex
}

// NewApp is the constructor for the main application. It loads the site
// configuration and bootstraps the extension modules; the host is not
// booted yet. When no modules are given the core modules are used.
//
// Configuration and bootstrap errors are programmer or deployment errors
// that make the process useless, so NewApp panics on them.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
		menu:   &menu.Slot{},
	}

	site, err := a.loadSite(ctx)
	if err != nil {
		panic(err)
	}
	a.site = config.NewCurrent(site)
	a.text = i18n.NewCatalog(textTable(site))

	opts := []host.Option{
		host.WithPage(a.page),
		host.WithMount("/health", http.HandlerFunc(a.healthHandler)),
		host.WithCommitHook(a.commit),
	}
	if appConfig.Dev {
		a.notifier = livereload.New(ctx)
		opts = append(opts, host.WithMount(livereload.Path+"*", a.notifier.Handler()))
		logger.Debug("Live reload endpoint enabled.", "path", livereload.Path)
	}
	a.host = host.New(opts...)

	if len(modules) == 0 {
		modules = coreModules(a)
	}
	reg, err := Bootstrap(ctx, a.host, modules...)
	if err != nil {
		// The binding table does not match the host, so we panic.
		panic(err)
	}
	a.registry = reg

	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry { return a.registry }

// Host returns the host platform.
func (a *App) Host() *host.Platform { return a.host }

// Site returns the live site configuration.
func (a *App) Site() *config.Site { return a.site.Load() }

// Boot runs the first lifecycle cycle.
func (a *App) Boot(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if err := a.host.Boot(ctx); err != nil {
		return fmt.Errorf("boot: %w", err)
	}
	a.logger.Info("Host booted.", "routes", len(a.host.Routes()), "menu_entries", a.menu.Load().Len())
	return nil
}

// Reload reloads the site configuration and runs a development reload
// cycle. The new configuration is staged for the cycle and only served once
// the cycle commits; on failure the previous state keeps serving.
func (a *App) Reload(ctx context.Context) error {
	a.reloadMu.Lock()
	defer a.reloadMu.Unlock()

	ctx = ctxlog.WithLogger(ctx, a.logger)
	site, err := a.loadSite(ctx)
	if err != nil {
		return err
	}

	a.site.Stage(site)
	a.text.Stage(textTable(site))
	if err := a.host.Reload(ctx); err != nil {
		a.site.Discard()
		a.text.Discard()
		return fmt.Errorf("reload: %w", err)
	}

	cycle := a.host.Cycles()
	if a.notifier != nil {
		a.notifier.Reloaded(ctx, cycle)
	}
	a.logger.Info("Development reload complete.", "cycle", cycle, "routes", len(a.host.Routes()))
	return nil
}

// commit publishes what a host cycle staged, together with the host's own
// state, or drops it when the cycle was aborted.
func (a *App) commit(ctx context.Context, committed bool) {
	if committed {
		a.site.Commit()
		a.text.Commit()
	} else {
		a.site.Discard()
		a.text.Discard()
	}
	mainmenu.CommitHook(a.menu)(ctx, committed)
}

// Menu renders the main menu for a request to currentPath.
func (a *App) Menu(currentPath string) []navigation.Link {
	return navigation.NewResolver(a.host).Links(a.menu.Load(), currentPath)
}

// Handler serves the host with the app logger in every request context.
func (a *App) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.host.ServeHTTP(w, r.WithContext(ctxlog.WithLogger(r.Context(), a.logger)))
	})
}
