package host

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/extension"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
)

// PageFunc returns the handler serving a drawn route.
type PageFunc func(r Route) http.Handler

// CommitFunc is told how a cycle ended: committed is true when the cycle
// was published, false when it was aborted.
type CommitFunc func(ctx context.Context, committed bool)

type mount struct {
	pattern string
	handler http.Handler
}

// classSet is the set of class instances created by one model load.
type classSet struct {
	generation uint64
	byName     map[string]*Class
	order      []string
}

func (s *classSet) get(name string) (*Class, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.byName[name]
	return c, ok
}

// Platform is the reference host: it owns the lifecycle bus, loads host
// classes, draws routes and serves HTTP. Boot and Reload run a full cycle
// against freshly loaded classes and publish the result only when every
// stage succeeded, so a failed reload leaves the previous state serving.
type Platform struct {
	bus    *lifecycle.Bus
	page   PageFunc
	routes []Route
	mounts []mount
	commit []CommitFunc

	defsMu sync.RWMutex
	defs   []ClassDef

	cycle   sync.Mutex
	loads   atomic.Uint64
	cycles  atomic.Uint64
	staged  atomic.Pointer[classSet]
	drawn   atomic.Pointer[routeTable]
	classes atomic.Pointer[classSet]
	table   atomic.Pointer[routeTable]
}

// Option configures a Platform.
type Option func(*Platform)

// WithClasses replaces the class catalog.
func WithClasses(defs ...ClassDef) Option {
	return func(p *Platform) { p.defs = slices.Clone(defs) }
}

// WithRoutes replaces the static route table.
func WithRoutes(routes ...Route) Option {
	return func(p *Platform) { p.routes = slices.Clone(routes) }
}

// WithPage sets the handler factory for drawn routes.
func WithPage(fn PageFunc) Option {
	return func(p *Platform) { p.page = fn }
}

// WithMount serves h under pattern next to the drawn routes.
func WithMount(pattern string, h http.Handler) Option {
	return func(p *Platform) { p.mounts = append(p.mounts, mount{pattern: pattern, handler: h}) }
}

// WithCommitHook runs fn at the end of every cycle, right after the cycle
// was published or aborted. Collaborators use it to publish state they
// staged during the cycle together with the host's.
func WithCommitHook(fn CommitFunc) Option {
	return func(p *Platform) { p.commit = append(p.commit, fn) }
}

// New creates a platform with the default catalog and routes.
func New(opts ...Option) *Platform {
	p := &Platform{
		bus:    lifecycle.NewBus(),
		defs:   DefaultClasses(),
		routes: DefaultRoutes(),
		page:   defaultPage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subscribe registers h for stage on the host bus.
func (p *Platform) Subscribe(stage lifecycle.Stage, h lifecycle.Handler) error {
	return p.bus.Subscribe(stage, h)
}

// HasTarget reports whether name is in the class catalog.
func (p *Platform) HasTarget(name string) bool {
	p.defsMu.RLock()
	defer p.defsMu.RUnlock()
	return slices.ContainsFunc(p.defs, func(d ClassDef) bool { return d.Name == name })
}

// HasRoute reports whether name is a static route or a route drawn by the
// last published cycle.
func (p *Platform) HasRoute(name string) bool {
	if slices.ContainsFunc(p.routes, func(r Route) bool { return r.Name == name }) {
		return true
	}
	_, ok := p.table.Load().lookup(name)
	return ok
}

// DropClass removes name from the catalog. The class disappears from the
// next model load on, as it would after a host upgrade removing it.
func (p *Platform) DropClass(name string) {
	p.defsMu.Lock()
	defer p.defsMu.Unlock()
	p.defs = slices.DeleteFunc(p.defs, func(d ClassDef) bool { return d.Name == name })
}

// attachable returns the classes attachments go to: the ones being loaded
// while a cycle runs, the published ones otherwise.
func (p *Platform) attachable() *classSet {
	if s := p.staged.Load(); s != nil {
		return s
	}
	return p.classes.Load()
}

// Class returns the published instance of the named class. Classes of a
// cycle still running are not visible until the cycle is published.
func (p *Platform) Class(name string) (*Class, bool) {
	return p.classes.Load().get(name)
}

// Attach attaches c to target. During a cycle that is the instance the
// cycle loaded. Hooks run after the capability is in place.
func (p *Platform) Attach(ctx context.Context, target string, c extension.Capability) error {
	cls, ok := p.attachable().get(target)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTarget, target)
	}
	if !cls.Accepts(c) {
		return fmt.Errorf("%w: %q into %q", ErrIncompatibleShape, c.Name(), target)
	}
	cls.put(c)
	ctxlog.FromContext(ctx).Debug("Capability attached.", "target", target, "capability", c.Name(), "generation", cls.Generation())

	if h, ok := c.(extension.Hook); ok {
		if err := h.OnAttach(ctx, target); err != nil {
			return fmt.Errorf("hook %q on %q: %w", c.Name(), target, err)
		}
	}
	return nil
}

// ResolvePath returns the path of the named route with params filled in.
// While a cycle runs, the routes it drew are used.
func (p *Platform) ResolvePath(name string, params ...string) (string, error) {
	t := p.drawn.Load()
	if t == nil {
		t = p.table.Load()
	}
	r, ok := t.lookup(name)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownRoute, name)
	}
	return r.Expand(params...)
}

// Routes returns the published route table.
func (p *Platform) Routes() []Route {
	t := p.table.Load()
	if t == nil {
		return nil
	}
	return slices.Clone(t.routes)
}

// Cycles returns the number of successfully published cycles.
func (p *Platform) Cycles() uint64 { return p.cycles.Load() }

// Booted reports whether the first cycle has been published.
func (p *Platform) Booted() bool { return p.table.Load() != nil }

// Boot runs the first cycle. ClassUnload does not fire at boot.
func (p *Platform) Boot(ctx context.Context) error {
	if p.Booted() {
		return ErrAlreadyBooted
	}
	return p.run(ctx, false)
}

// Reload runs a development reload cycle: classes are loaded afresh, the
// previous attachments are gone, and every stage fires again.
func (p *Platform) Reload(ctx context.Context) error {
	if !p.Booted() {
		return ErrNotBooted
	}
	return p.run(ctx, true)
}

func (p *Platform) run(ctx context.Context, reload bool) (err error) {
	p.cycle.Lock()
	defer p.cycle.Unlock()

	logger := ctxlog.FromContext(ctx)
	classes := p.loadModels()
	p.staged.Store(classes)
	defer func() {
		p.staged.Store(nil)
		p.drawn.Store(nil)
		for _, fn := range p.commit {
			fn(ctx, err == nil)
		}
		if err != nil {
			logger.Warn("Lifecycle cycle aborted.", "generation", classes.generation, "reload", reload, "error", err)
		}
	}()

	logger.Info("Lifecycle cycle started.", "generation", classes.generation, "reload", reload)

	if err := p.bus.Fire(ctx, lifecycle.StageModelLoad); err != nil {
		return err
	}
	if reload {
		if err := p.bus.Fire(ctx, lifecycle.StageClassUnload); err != nil {
			return err
		}
	}

	table, err := p.drawRoutes(classes)
	if err != nil {
		return fmt.Errorf("draw routes: %w", err)
	}
	p.drawn.Store(table)

	if err := p.bus.Fire(ctx, lifecycle.StageRouteLoad); err != nil {
		return err
	}
	if err := p.bus.Fire(ctx, lifecycle.StagePrepare); err != nil {
		return err
	}

	p.mountRouter(table, classes)
	p.classes.Store(classes)
	p.table.Store(table)
	n := p.cycles.Add(1)
	logger.Info("Lifecycle cycle published.", "generation", classes.generation, "cycle", n, "routes", len(table.routes))
	return nil
}

// loadModels creates fresh instances of every catalog class.
func (p *Platform) loadModels() *classSet {
	p.defsMu.RLock()
	defer p.defsMu.RUnlock()
	s := &classSet{
		generation: p.loads.Add(1),
		byName:     make(map[string]*Class, len(p.defs)),
	}
	for _, def := range p.defs {
		s.byName[def.Name] = newClass(def, s.generation)
		s.order = append(s.order, def.Name)
	}
	return s
}

// middlewares collects Middleware capabilities in catalog order.
func (p *Platform) middlewares(classes *classSet) []extension.Middleware {
	var out []extension.Middleware
	for _, name := range classes.order {
		out = append(out, Extensions[extension.Middleware](classes.byName[name])...)
	}
	return out
}

// Helpers merges the helpers attached to the published target. Later
// capabilities win.
func (p *Platform) Helpers(target string) map[string]any {
	out := make(map[string]any)
	cls, ok := p.Class(target)
	if !ok {
		return out
	}
	for _, h := range Extensions[extension.Helpers](cls) {
		for name, fn := range h.Helpers() {
			out[name] = fn
		}
	}
	return out
}

// Rewrite runs content through the rewriters attached to target.
func (p *Platform) Rewrite(target, content string) string {
	cls, ok := p.Class(target)
	if !ok {
		return content
	}
	for _, rw := range Extensions[extension.ContentRewriter](cls) {
		content = rw.Rewrite(content)
	}
	return content
}
