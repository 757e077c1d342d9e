// Package cli turns overlaygo's command line into an app.Config. Bad input
// is reported as an ExitError carrying the process exit code.
package cli
