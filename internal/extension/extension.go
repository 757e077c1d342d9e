// Package extension defines the capability contracts that site
// customizations attach to host classes.
//
// A capability is identified by its name. Attaching a capability whose name
// is already attached to a class replaces it, which is what makes repeated
// attachment across reload cycles idempotent.
//
// Host classes accept capabilities by shape: each class lists the interfaces
// below that it knows how to use, and a capability must implement at least
// one of them to be attached. This replaces runtime mixing-in with ordinary
// interface implementation.
package extension

import (
	"context"
	"net/http"
	"reflect"
)

// Capability is the base interface all capabilities implement.
type Capability interface {
	// Name returns the unique name of the capability within a class.
	Name() string
}

// Hook is implemented by capabilities that run logic every time they are
// attached to a class.
type Hook interface {
	Capability
	OnAttach(ctx context.Context, target string) error
}

// AuthProviders contributes external sign-in providers to a user model.
type AuthProviders interface {
	Capability
	OmniauthProviders() []string
}

// Helpers contributes named template helper functions to a view or cell.
type Helpers interface {
	Capability
	Helpers() map[string]any
}

// ContentRewriter contributes a rewrite step to a content parser.
type ContentRewriter interface {
	Capability
	Rewrite(content string) string
}

// Middleware wraps request handling of a controller or controller concern.
type Middleware interface {
	Capability
	Wrap(next http.Handler) http.Handler
}

// RouteDependent is implemented by capabilities that need named routes to
// exist. The names are checked at bootstrap, before anything is served.
type RouteDependent interface {
	RouteNames() []string
}

// Shape values for the contracts above, used by host class definitions.
var (
	ShapeHook            = reflect.TypeFor[Hook]()
	ShapeAuthProviders   = reflect.TypeFor[AuthProviders]()
	ShapeHelpers         = reflect.TypeFor[Helpers]()
	ShapeContentRewriter = reflect.TypeFor[ContentRewriter]()
	ShapeMiddleware      = reflect.TypeFor[Middleware]()
)

// Fits reports whether c implements at least one of shapes.
func Fits(c Capability, shapes ...reflect.Type) bool {
	if c == nil {
		return false
	}
	t := reflect.TypeOf(c)
	for _, shape := range shapes {
		if t.Implements(shape) {
			return true
		}
	}
	return false
}
