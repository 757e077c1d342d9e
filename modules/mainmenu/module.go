// Package mainmenu replaces the host's main menu with the site's own three
// entries. The menu is rebuilt every time the registry capability is
// attached, which happens on each prepare, and is published by CommitHook
// once the host commits that cycle.
package mainmenu

import (
	"context"
	"errors"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/menu"
	"github.com/specialistvlad/overlaygo/internal/navigation"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Scope of the menu label translations.
const Scope = "decidim"

// Items returns the main menu items.
func Items() []menu.Item {
	return []menu.Item{
		{Label: menu.Text{Key: "menu.home", Scope: Scope}, Destination: host.RouteRoot, Position: 1, Match: menu.MatchExact},
		{Label: menu.Text{Key: "menu.processes", Scope: Scope}, Destination: host.RouteProcesses, Position: 2, Match: menu.MatchPrefix},
		{Label: menu.Text{Key: "menu.more_information", Scope: Scope}, Destination: host.RoutePages, Position: 3, Match: menu.MatchPrefix},
	}
}

// Module implements the registry.Module interface for this package.
type Module struct {
	Slot  *menu.Slot
	Text  menu.Translator
	Paths navigation.Router
}

// Capability builds the main menu when attached to the menu registry.
type Capability struct {
	slot    *menu.Slot
	builder *menu.Builder
	items   []menu.Item
}

func (c *Capability) Name() string { return "main_menu" }

// RouteNames lists the destinations of the menu items.
func (c *Capability) RouteNames() []string {
	names := make([]string, 0, len(c.items))
	for _, it := range c.items {
		names = append(names, it.Destination)
	}
	return names
}

// OnAttach builds the menu and stages it in the slot.
func (c *Capability) OnAttach(ctx context.Context, target string) error {
	m := c.builder.Build(ctx, c.items)
	c.slot.Stage(m)
	ctxlog.FromContext(ctx).Debug("Main menu staged.", "target", target, "entries", m.Len())
	return nil
}

// CommitHook publishes the menu staged in slot when a host cycle commits,
// and drops it when the cycle is aborted.
func CommitHook(slot *menu.Slot) host.CommitFunc {
	return func(ctx context.Context, committed bool) {
		if !committed {
			slot.Discard()
			return
		}
		if slot.Commit() {
			ctxlog.FromContext(ctx).Info("Main menu published.", "entries", slot.Load().Len(), "generation", slot.Generation())
		}
	}
}

// Register binds the menu capability on every prepare.
func (m *Module) Register(r *registry.Registry) error {
	if m.Slot == nil || m.Text == nil || m.Paths == nil {
		return errors.New("mainmenu: menu slot, translator or router missing")
	}
	c := &Capability{
		slot:    m.Slot,
		builder: menu.NewBuilder(m.Text, navigation.NewResolver(m.Paths)),
		items:   Items(),
	}
	return r.Bind(host.MenuRegistry, c, lifecycle.StagePrepare)
}
