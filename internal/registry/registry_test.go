package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/extension"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────
// Test doubles
// ──────────────────────────────────────────────────

type namedCap struct{ name string }

func (c namedCap) Name() string { return c.name }

type routeCap struct {
	namedCap
	routes []string
}

func (c routeCap) RouteNames() []string { return c.routes }

// fakeHost records attachment calls and keeps attached capabilities keyed by
// name, the same way the real host does.
type fakeHost struct {
	calls    []string
	attached map[string]map[string]extension.Capability
	fail     map[string]error
}

func newFakeHost(targets ...string) *fakeHost {
	h := &fakeHost{attached: map[string]map[string]extension.Capability{}, fail: map[string]error{}}
	for _, t := range targets {
		h.attached[t] = map[string]extension.Capability{}
	}
	return h
}

func (h *fakeHost) Attach(_ context.Context, target string, c extension.Capability) error {
	h.calls = append(h.calls, target+"/"+c.Name())
	if err := h.fail[c.Name()]; err != nil {
		return err
	}
	caps, ok := h.attached[target]
	if !ok {
		return errors.New("unknown target")
	}
	caps[c.Name()] = c
	return nil
}

func (h *fakeHost) HasTarget(name string) bool {
	_, ok := h.attached[name]
	return ok
}

func (h *fakeHost) HasRoute(name string) bool {
	return name == "root" || name == "processes" || name == "pages"
}

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ──────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────

func TestOnStage_AppliesOnlyThatStageInRegistrationOrder(t *testing.T) {
	h := newFakeHost("user", "view", "menu")
	r := New(h)

	require.NoError(t, r.Register(Binding{Target: "user", Capability: namedCap{"auth"}, Stage: lifecycle.StageModelLoad}))
	require.NoError(t, r.Register(Binding{Target: "view", Capability: namedCap{"map"}, Stage: lifecycle.StagePrepare}))
	require.NoError(t, r.Register(Binding{Target: "user", Capability: namedCap{"auth"}, Stage: lifecycle.StageClassUnload}))
	require.NoError(t, r.Register(Binding{Target: "menu", Capability: namedCap{"main"}, Stage: lifecycle.StagePrepare}))

	require.NoError(t, r.OnStage(testCtx(), lifecycle.StagePrepare))
	assert.Equal(t, []string{"view/map", "menu/main"}, h.calls)

	h.calls = nil
	require.NoError(t, r.OnStage(testCtx(), lifecycle.StageModelLoad))
	assert.Equal(t, []string{"user/auth"}, h.calls)

	h.calls = nil
	require.NoError(t, r.OnStage(testCtx(), lifecycle.StageRouteLoad))
	assert.Empty(t, h.calls)
}

func TestOnStage_ReorderingChangesOrderNotPresence(t *testing.T) {
	first, second := namedCap{"comments"}, namedCap{"parser"}

	h1 := newFakeHost("a", "b")
	r1 := New(h1)
	require.NoError(t, r1.Bind("a", first, lifecycle.StagePrepare))
	require.NoError(t, r1.Bind("b", second, lifecycle.StagePrepare))
	require.NoError(t, r1.OnStage(testCtx(), lifecycle.StagePrepare))

	h2 := newFakeHost("a", "b")
	r2 := New(h2)
	require.NoError(t, r2.Bind("b", second, lifecycle.StagePrepare))
	require.NoError(t, r2.Bind("a", first, lifecycle.StagePrepare))
	require.NoError(t, r2.OnStage(testCtx(), lifecycle.StagePrepare))

	assert.Equal(t, []string{"a/comments", "b/parser"}, h1.calls)
	assert.Equal(t, []string{"b/parser", "a/comments"}, h2.calls)
	assert.ElementsMatch(t, h1.calls, h2.calls)
	assert.Equal(t, h1.attached, h2.attached)
}

func TestOnStage_DuplicateBindingsApplyTwice(t *testing.T) {
	h := newFakeHost("user")
	r := New(h)
	c := namedCap{"auth"}
	require.NoError(t, r.Bind("user", c, lifecycle.StagePrepare))
	require.NoError(t, r.Bind("user", c, lifecycle.StagePrepare))

	require.NoError(t, r.OnStage(testCtx(), lifecycle.StagePrepare))
	assert.Equal(t, []string{"user/auth", "user/auth"}, h.calls)
	assert.Len(t, h.attached["user"], 1, "attaching by name is idempotent")
}

func TestOnStage_AttachFailureStopsStage(t *testing.T) {
	h := newFakeHost("a", "b", "c")
	boom := errors.New("incompatible shape")
	h.fail["broken"] = boom
	r := New(h)
	require.NoError(t, r.Bind("a", namedCap{"ok"}, lifecycle.StagePrepare))
	require.NoError(t, r.Bind("b", namedCap{"broken"}, lifecycle.StagePrepare))
	require.NoError(t, r.Bind("c", namedCap{"never"}, lifecycle.StagePrepare))

	err := r.OnStage(testCtx(), lifecycle.StagePrepare)
	require.ErrorIs(t, err, boom)

	var attachErr *AttachmentError
	require.ErrorAs(t, err, &attachErr)
	assert.Equal(t, lifecycle.StagePrepare, attachErr.Stage)
	assert.Equal(t, "b", attachErr.Target)
	assert.Equal(t, "broken", attachErr.Capability)
	assert.Equal(t, []string{"a/ok", "b/broken"}, h.calls)
}

func TestRegister_RejectsInvalidBindings(t *testing.T) {
	r := New(newFakeHost("user"))

	tests := []struct {
		name    string
		binding Binding
	}{
		{"unknown stage", Binding{Target: "user", Capability: namedCap{"x"}, Stage: lifecycle.Stage(42)}},
		{"zero stage", Binding{Target: "user", Capability: namedCap{"x"}}},
		{"empty target", Binding{Target: " ", Capability: namedCap{"x"}, Stage: lifecycle.StagePrepare}},
		{"nil capability", Binding{Target: "user", Stage: lifecycle.StagePrepare}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := r.Register(tc.binding)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
	assert.Equal(t, 0, r.Len())

	var cfgErr *ConfigurationError
	require.ErrorAs(t, r.Bind("user", namedCap{"x"}), &cfgErr)
}

func TestRegister_AfterSealFails(t *testing.T) {
	r := New(newFakeHost("user"))
	require.NoError(t, r.Bind("user", namedCap{"auth"}, lifecycle.StageModelLoad, lifecycle.StageClassUnload))
	r.Seal()

	err := r.Bind("user", namedCap{"late"}, lifecycle.StagePrepare)
	require.ErrorIs(t, err, ErrSealed)
	assert.True(t, r.Sealed())
	assert.Equal(t, 2, r.Len())
	assert.Empty(t, r.Bindings(lifecycle.StagePrepare))
}

func TestBindings_ReturnsCopy(t *testing.T) {
	r := New(newFakeHost("user"))
	require.NoError(t, r.Bind("user", namedCap{"auth"}, lifecycle.StageModelLoad))

	got := r.Bindings(lifecycle.StageModelLoad)
	require.Len(t, got, 1)
	got[0].Target = "mutated"
	assert.Equal(t, "user", r.Bindings(lifecycle.StageModelLoad)[0].Target)
}

func TestValidate(t *testing.T) {
	t.Run("known targets and routes", func(t *testing.T) {
		h := newFakeHost("menu")
		r := New(h)
		require.NoError(t, r.Bind("menu", routeCap{namedCap{"main"}, []string{"root", "processes"}}, lifecycle.StagePrepare))
		assert.NoError(t, r.Validate(testCtx(), h))
	})

	t.Run("unknown target and route are collected", func(t *testing.T) {
		h := newFakeHost("menu")
		r := New(h)
		require.NoError(t, r.Bind("ghost", namedCap{"x"}, lifecycle.StagePrepare))
		require.NoError(t, r.Bind("menu", routeCap{namedCap{"main"}, []string{"root", "nowhere"}}, lifecycle.StagePrepare))

		err := r.Validate(testCtx(), h)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), `unknown target "ghost"`)
		assert.Contains(t, err.Error(), `unknown route "nowhere"`)
	})
}

func TestSubscribe_WiresEveryStage(t *testing.T) {
	h := newFakeHost("user", "menu")
	r := New(h)
	require.NoError(t, r.Bind("user", namedCap{"auth"}, lifecycle.StageModelLoad, lifecycle.StageClassUnload))
	require.NoError(t, r.Bind("menu", namedCap{"main"}, lifecycle.StagePrepare))

	bus := lifecycle.NewBus()
	require.NoError(t, r.Subscribe(bus))
	for _, s := range lifecycle.Stages() {
		assert.Equal(t, 1, bus.Subscribers(s))
	}

	ctx := testCtx()
	for _, s := range lifecycle.Stages() {
		require.NoError(t, bus.Fire(ctx, s))
	}
	assert.Equal(t, []string{"user/auth", "user/auth", "menu/main"}, h.calls)
}

func TestErrors_Messages(t *testing.T) {
	cause := errors.New("cause")
	assert.Equal(t, "configuration error: bad", (&ConfigurationError{Reason: "bad"}).Error())
	assert.Equal(t, "configuration error: bad: cause", (&ConfigurationError{Reason: "bad", Err: cause}).Error())

	err := &AttachmentError{Stage: lifecycle.StageClassUnload, Target: "user", Capability: "auth", Err: cause}
	assert.Equal(t, `attach "auth" to "user" at stage class_unload: cause`, err.Error())
}
