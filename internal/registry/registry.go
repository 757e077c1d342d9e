package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/extension"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
)

// Module is the interface every site extension package implements to add
// its bindings to the registry.
type Module interface {
	Register(r *Registry) error
}

// Attacher is the host's capability attachment primitive.
type Attacher interface {
	Attach(ctx context.Context, target string, c extension.Capability) error
}

// Subscriber is the host's lifecycle subscription API.
type Subscriber interface {
	Subscribe(stage lifecycle.Stage, h lifecycle.Handler) error
}

// Binding describes one customization: attach Capability to Target
// whenever Stage fires.
type Binding struct {
	Target     string
	Capability extension.Capability
	Stage      lifecycle.Stage
}

func (b Binding) String() string {
	name := "<nil>"
	if b.Capability != nil {
		name = b.Capability.Name()
	}
	return fmt.Sprintf("%s -> %s @ %s", name, b.Target, b.Stage)
}

// Registry holds bindings keyed by stage.
type Registry struct {
	attacher Attacher
	bindings map[lifecycle.Stage][]Binding
	count    int
	sealed   bool
}

// New creates an empty registry that applies bindings through a.
func New(a Attacher) *Registry {
	return &Registry{
		attacher: a,
		bindings: make(map[lifecycle.Stage][]Binding),
	}
}

// Register appends b to the bindings of its stage. Duplicates are kept and
// applied twice.
func (r *Registry) Register(b Binding) error {
	if r.sealed {
		return configErr(fmt.Sprintf("cannot register %s", b), ErrSealed)
	}
	if !b.Stage.Valid() {
		return configErr(fmt.Sprintf("binding %s has unknown stage", b), nil)
	}
	if strings.TrimSpace(b.Target) == "" {
		return configErr(fmt.Sprintf("binding %s has empty target", b), nil)
	}
	if b.Capability == nil {
		return configErr(fmt.Sprintf("binding for target %q at stage %s has nil capability", b.Target, b.Stage), nil)
	}
	r.bindings[b.Stage] = append(r.bindings[b.Stage], b)
	r.count++
	return nil
}

// Bind registers c for target at each of stages, in the given order.
func (r *Registry) Bind(target string, c extension.Capability, stages ...lifecycle.Stage) error {
	if len(stages) == 0 {
		return configErr(fmt.Sprintf("binding for target %q has no stage", target), nil)
	}
	for _, stage := range stages {
		if err := r.Register(Binding{Target: target, Capability: c, Stage: stage}); err != nil {
			return err
		}
	}
	return nil
}

// Seal stops further registration.
func (r *Registry) Seal() { r.sealed = true }

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool { return r.sealed }

// Len returns the total number of bindings across all stages.
func (r *Registry) Len() int { return r.count }

// Bindings returns a copy of the bindings registered for stage, in order.
func (r *Registry) Bindings(stage lifecycle.Stage) []Binding {
	return append([]Binding(nil), r.bindings[stage]...)
}

// OnStage attaches every binding of stage in registration order. The first
// failure stops the stage and is returned as an *AttachmentError.
func (r *Registry) OnStage(ctx context.Context, stage lifecycle.Stage) error {
	logger := ctxlog.FromContext(ctx)
	bindings := r.bindings[stage]

	for _, b := range bindings {
		logger.Debug("Applying extension binding.", "stage", stage.String(), "target", b.Target, "capability", b.Capability.Name())
		if err := r.attacher.Attach(ctx, b.Target, b.Capability); err != nil {
			return &AttachmentError{Stage: stage, Target: b.Target, Capability: b.Capability.Name(), Err: err}
		}
	}

	if len(bindings) > 0 {
		logger.Info("Extension bindings applied.", "stage", stage.String(), "count", len(bindings))
	}
	return nil
}

// Subscribe subscribes OnStage to every lifecycle stage on s.
func (r *Registry) Subscribe(s Subscriber) error {
	for _, stage := range lifecycle.Stages() {
		if err := s.Subscribe(stage, r.OnStage); err != nil {
			return configErr("subscribe registry", err)
		}
	}
	return nil
}
