package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Host is what bootstrap needs from the host platform.
type Host interface {
	registry.Attacher
	registry.Subscriber
	registry.Environment
}

// Bootstrap registers every module, checks the bindings against h, seals
// the registry and subscribes it to all lifecycle stages. It must run
// before h boots. Every error is a *registry.ConfigurationError.
func Bootstrap(ctx context.Context, h Host, modules ...registry.Module) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	reg := registry.New(h)

	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			var cfgErr *registry.ConfigurationError
			if errors.As(err, &cfgErr) {
				return nil, err
			}
			return nil, &registry.ConfigurationError{Reason: fmt.Sprintf("register module %T", m), Err: err}
		}
		logger.Debug("Module registered.", "module", fmt.Sprintf("%T", m))
	}

	if err := reg.Validate(ctx, h); err != nil {
		return nil, err
	}
	reg.Seal()
	if err := reg.Subscribe(h); err != nil {
		return nil, err
	}

	logger.Info("Extension bootstrap complete.", "modules", len(modules), "bindings", reg.Len())
	return reg, nil
}
