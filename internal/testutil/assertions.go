package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that a text-handler log line with msg carries every
// key=value pair in kv.
func AssertLogged(t *testing.T, logs *SafeBuffer, msg string, kv ...any) {
	t.Helper()
	require.Zero(t, len(kv)%2, "kv must hold key/value pairs")

	want := fmt.Sprintf("msg=%q", msg)
	for _, line := range strings.Split(logs.String(), "\n") {
		if !strings.Contains(line, want) {
			continue
		}
		if hasAll(line, kv) {
			return
		}
	}
	require.Failf(t, "log line not found", "no %s line with %v in:\n%s", want, kv, logs.String())
}

func hasAll(line string, kv []any) bool {
	for i := 0; i < len(kv); i += 2 {
		if !strings.Contains(line, fmt.Sprintf("%v=%v", kv[i], kv[i+1])) {
			return false
		}
	}
	return true
}
