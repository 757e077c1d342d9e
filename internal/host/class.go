package host

import (
	"reflect"
	"sync"

	"github.com/specialistvlad/overlaygo/internal/extension"
)

// ClassDef declares a host class and the capability shapes it accepts.
type ClassDef struct {
	Name  string
	Shape []reflect.Type
}

// Class is one loaded instance of a host class. Every model load creates
// new instances, dropping whatever was attached to the previous ones.
type Class struct {
	def        ClassDef
	generation uint64

	mu    sync.RWMutex
	order []string
	caps  map[string]extension.Capability
}

func newClass(def ClassDef, generation uint64) *Class {
	return &Class{
		def:        def,
		generation: generation,
		caps:       make(map[string]extension.Capability),
	}
}

// Name returns the class name.
func (c *Class) Name() string { return c.def.Name }

// Generation returns the model load that created this instance.
func (c *Class) Generation() uint64 { return c.generation }

// Accepts reports whether capability fits one of the class shapes.
func (c *Class) Accepts(capability extension.Capability) bool {
	return extension.Fits(capability, c.def.Shape...)
}

// put attaches capability by name. Re-attaching a name replaces the
// previous capability in place and keeps its position.
func (c *Class) put(capability extension.Capability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name := capability.Name()
	if _, ok := c.caps[name]; !ok {
		c.order = append(c.order, name)
	}
	c.caps[name] = capability
}

// Has reports whether a capability with name is attached.
func (c *Class) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.caps[name]
	return ok
}

// Capabilities returns attached capabilities in first-attach order.
func (c *Class) Capabilities() []extension.Capability {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]extension.Capability, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.caps[name])
	}
	return out
}

// Extensions returns the capabilities attached to c that implement T.
func Extensions[T any](c *Class) []T {
	if c == nil {
		return nil
	}
	var out []T
	for _, capability := range c.Capabilities() {
		if v, ok := capability.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
