package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/reloader"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run boots the host if needed and serves HTTP until ctx is cancelled. In
// dev mode the configuration is watched and reloaded on change.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if !a.host.Booted() {
		if err := a.Boot(ctx); err != nil {
			return err
		}
	}

	ln, err := net.Listen("tcp", a.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.config.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is cancelled. The host must be booted.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("HTTP server starting.", "address", ln.Addr().String(), "dev", a.config.Dev)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		a.logger.Info("Shutting down HTTP server...")
		if a.notifier != nil {
			a.notifier.Close()
		}
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		a.logger.Debug("HTTP server shut down gracefully.")
		return nil
	})
	if a.config.Dev {
		w := reloader.New(a.Reload, a.config.ConfigPath)
		if a.config.ReloadDebounce > 0 {
			w = w.WithDebounce(a.config.ReloadDebounce)
		}
		g.Go(func() error { return w.Watch(gctx) })
	}

	err := g.Wait()
	a.logger.Debug("App.Run method finished.")
	return err
}
