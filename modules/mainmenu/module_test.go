package mainmenu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/i18n"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/menu"
	"github.com/specialistvlad/overlaygo/internal/navigation"
	"github.com/specialistvlad/overlaygo/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func finnish() *i18n.Catalog {
	return i18n.NewCatalog(&i18n.Table{
		Locale: "fi",
		Strings: map[string]map[string]string{"fi": {
			"decidim.menu.home":             "Etusivu",
			"decidim.menu.processes":        "Suunnitelmat",
			"decidim.menu.more_information": "Lisätietoa",
		}},
	})
}

func boot(t *testing.T, p *host.Platform, m *Module) {
	t.Helper()
	r := registry.New(p)
	require.NoError(t, m.Register(r))
	require.NoError(t, r.Validate(testCtx(), p))
	r.Seal()
	require.NoError(t, r.Subscribe(p))
	require.NoError(t, p.Boot(testCtx()))
}

func TestMainMenu(t *testing.T) {
	slot := &menu.Slot{}
	p := host.New(host.WithCommitHook(CommitHook(slot)))
	boot(t, p, &Module{Slot: slot, Text: finnish(), Paths: p})

	want := []menu.Entry{
		{Label: "Etusivu", Destination: "root", Path: "/", Position: 1, Match: menu.MatchExact},
		{Label: "Suunnitelmat", Destination: "processes", Path: "/processes", Position: 2, Match: menu.MatchPrefix},
		{Label: "Lisätietoa", Destination: "pages", Path: "/pages", Position: 3, Match: menu.MatchPrefix},
	}
	if diff := cmp.Diff(want, slot.Load().Entries()); diff != "" {
		t.Errorf("menu mismatch (-want +got):\n%s", diff)
	}

	links := navigation.NewResolver(p).Links(slot.Load(), "/processes/budget-2024")
	assert.Equal(t, []bool{false, true, false}, []bool{links[0].Active, links[1].Active, links[2].Active})

	links = navigation.NewResolver(p).Links(slot.Load(), "/")
	assert.Equal(t, []bool{true, false, false}, []bool{links[0].Active, links[1].Active, links[2].Active})
}

func TestMainMenu_RepublishedOnReload(t *testing.T) {
	slot := &menu.Slot{}
	p := host.New(host.WithCommitHook(CommitHook(slot)))
	boot(t, p, &Module{Slot: slot, Text: finnish(), Paths: p})
	first := slot.Load()

	require.NoError(t, p.Reload(testCtx()))
	assert.Equal(t, uint64(2), slot.Generation())
	assert.NotSame(t, first, slot.Load())
	assert.Equal(t, first.Entries(), slot.Load().Entries())
}

func TestMainMenu_AbortedCycleKeepsPublishedMenu(t *testing.T) {
	slot := &menu.Slot{}
	p := host.New(host.WithCommitHook(CommitHook(slot)))
	boot(t, p, &Module{Slot: slot, Text: finnish(), Paths: p})
	live := slot.Load()

	// A prepare handler subscribed after the registry fails once the menu
	// has already been built for the cycle.
	boom := errors.New("later binding failed")
	require.NoError(t, p.Subscribe(lifecycle.StagePrepare, func(context.Context, lifecycle.Stage) error {
		return boom
	}))

	require.ErrorIs(t, p.Reload(testCtx()), boom)
	assert.Same(t, live, slot.Load())
	assert.Equal(t, uint64(1), slot.Generation())
	assert.False(t, slot.Commit(), "the aborted menu is not kept for a later commit")
}

func TestMainMenu_MissingRouteFailsValidation(t *testing.T) {
	p := host.New(host.WithRoutes(host.Route{Name: host.RouteRoot, Pattern: "/"}))
	r := registry.New(p)
	require.NoError(t, (&Module{Slot: &menu.Slot{}, Text: finnish(), Paths: p}).Register(r))

	err := r.Validate(testCtx(), p)
	var cfgErr *registry.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), `unknown route "processes"`)
	assert.Contains(t, err.Error(), `unknown route "pages"`)
}

func TestRegister_RequiresCollaborators(t *testing.T) {
	assert.Error(t, (&Module{}).Register(registry.New(nil)))
}

func TestRouteNames(t *testing.T) {
	c := &Capability{items: Items()}
	assert.Equal(t, []string{"root", "processes", "pages"}, c.RouteNames())
}
