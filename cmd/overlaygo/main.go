package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/overlaygo/internal/app"
	"github.com/specialistvlad/overlaygo/internal/cli"
	"github.com/specialistvlad/overlaygo/internal/hcl_adapter"
	"gopkg.in/yaml.v3"
)

// main is the entrypoint for the overlaygo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Usage and menu output go to outW, logs go to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logW, "A critical startup error occurred: %v\n", r)
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl_adapter.NewLoader()
	overlayApp := app.NewApp(logW, appConfig, loader)

	if appConfig.PrintMenu != "" {
		return printMenu(ctx, outW, overlayApp, appConfig.PrintMenu)
	}
	return overlayApp.Run(ctx)
}

// printMenu boots the app and writes the main menu for path as YAML.
func printMenu(ctx context.Context, outW io.Writer, a *app.App, path string) error {
	if err := a.Boot(ctx); err != nil {
		return fmt.Errorf("boot: %w", err)
	}
	enc := yaml.NewEncoder(outW)
	enc.SetIndent(2)
	if err := enc.Encode(a.Menu(path)); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	return enc.Close()
}
