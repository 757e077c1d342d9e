package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/extension"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
)

// Environment is what the registry needs to know about the host to check
// the binding table before the host starts loading.
type Environment interface {
	HasTarget(name string) bool
	HasRoute(name string) bool
}

// Validate checks every binding against env: the target must exist, and
// every route a capability depends on must be known. All problems are
// collected into a single *ConfigurationError.
func (r *Registry) Validate(ctx context.Context, env Environment) error {
	logger := ctxlog.FromContext(ctx)
	var errs []error

	for _, stage := range lifecycle.Stages() {
		for _, b := range r.bindings[stage] {
			if !env.HasTarget(b.Target) {
				errs = append(errs, fmt.Errorf("binding %s: unknown target %q", b, b.Target))
			}
			dep, ok := b.Capability.(extension.RouteDependent)
			if !ok {
				continue
			}
			for _, name := range dep.RouteNames() {
				if !env.HasRoute(name) {
					errs = append(errs, fmt.Errorf("binding %s: unknown route %q", b, name))
				}
			}
		}
	}

	if len(errs) > 0 {
		return configErr("registry validation failed", errors.Join(errs...))
	}

	logger.Debug("Registry validation passed.", "bindings", r.count)
	return nil
}
