package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
)

// LogsEnv makes tests print their captured log output when set to "true".
const LogsEnv = "OVERLAYGO_TEST_LOGS"

// NewContext returns a context carrying a debug-level text logger that
// writes to the returned buffer.
func NewContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	DumpOnCleanup(t, buf)
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// DumpOnCleanup prints buf at the end of the test when LogsEnv is set.
func DumpOnCleanup(t *testing.T, buf *SafeBuffer) {
	t.Helper()
	t.Cleanup(func() {
		if os.Getenv(LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
}
