package userauth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOmniauthProviders(t *testing.T) {
	site := config.NewCurrent(nil)
	c := &Capability{site: site}
	assert.Equal(t, []string{Tunnistamo}, c.OmniauthProviders())

	enabled := config.Default()
	enabled.SuomifiEnabled = true
	enabled.MpassidEnabled = true
	site.Store(enabled)
	assert.Equal(t, []string{Tunnistamo, Suomifi, MPASSid}, c.OmniauthProviders())

	assert.Equal(t, []string{Tunnistamo}, (&Capability{}).OmniauthProviders())
}

func TestOmniauthProviders_ReadsStagedSite(t *testing.T) {
	site := config.NewCurrent(nil)
	c := &Capability{site: site}

	staged := config.Default()
	staged.SuomifiEnabled = true
	site.Stage(staged)
	assert.Equal(t, []string{Tunnistamo, Suomifi}, c.OmniauthProviders())

	site.Discard()
	assert.Equal(t, []string{Tunnistamo}, c.OmniauthProviders())
}

func TestRegister(t *testing.T) {
	r := registry.New(nil)
	require.NoError(t, (&Module{}).Register(r))

	for _, stage := range []lifecycle.Stage{lifecycle.StageModelLoad, lifecycle.StageClassUnload} {
		b := r.Bindings(stage)
		require.Len(t, b, 1, stage.String())
		assert.Equal(t, host.UserClass, b[0].Target)
	}
	assert.Empty(t, r.Bindings(lifecycle.StagePrepare))
}

// The sign-in routes of every enabled provider exist after any number of
// development reloads.
func TestProviderRoutesSurviveReloads(t *testing.T) {
	ctx := testCtx()
	site := config.Default()
	site.SuomifiEnabled = true

	p := host.New()
	r := registry.New(p)
	require.NoError(t, (&Module{Site: config.NewCurrent(site)}).Register(r))
	require.NoError(t, r.Subscribe(p))

	require.NoError(t, p.Boot(ctx))
	for range 3 {
		require.NoError(t, p.Reload(ctx))
	}

	for _, provider := range []string{Tunnistamo, Suomifi} {
		path, err := p.ResolvePath(host.OmniauthRouteName(provider))
		require.NoError(t, err)
		assert.Equal(t, "/users/auth/"+provider, path)
	}
	assert.False(t, p.HasRoute(host.OmniauthRouteName(MPASSid)))
}
