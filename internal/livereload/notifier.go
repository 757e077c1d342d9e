// Package livereload tells connected browsers that a development reload
// finished, so they can refresh the page.
package livereload

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/zishang520/socket.io/v2/socket"
)

// Path is where the socket.io endpoint is mounted.
const Path = "/socket.io/"

// Event is emitted with the cycle number after every published reload.
const Event = "reloaded"

// Notifier wraps a socket.io server.
type Notifier struct {
	io      *socket.Server
	clients atomic.Int64
	sent    atomic.Uint64
}

// New creates a notifier. Connections are logged through the logger in ctx.
func New(ctx context.Context) *Notifier {
	n := &Notifier{io: socket.NewServer(nil, nil)}
	logger := ctxlog.FromContext(ctx)

	n.io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		total := n.clients.Add(1)
		logger.Debug("Live reload client connected.", "id", string(client.Id()), "clients", total)
		client.On("disconnect", func(reason ...any) {
			total := n.clients.Add(-1)
			logger.Debug("Live reload client disconnected.", "id", string(client.Id()), "clients", total, "reason", reason)
		})
	})
	return n
}

// Handler serves the socket.io protocol. Mount it under Path.
func (n *Notifier) Handler() http.Handler {
	return n.io.ServeHandler(nil)
}

// Clients returns the number of connected clients.
func (n *Notifier) Clients() int64 { return n.clients.Load() }

// Sent returns the number of reload notifications emitted.
func (n *Notifier) Sent() uint64 { return n.sent.Load() }

// Reloaded notifies every client that cycle was published.
func (n *Notifier) Reloaded(ctx context.Context, cycle uint64) {
	n.io.Emit(Event, cycle)
	n.sent.Add(1)
	ctxlog.FromContext(ctx).Debug("Live reload notification sent.", "cycle", cycle, "clients", n.Clients())
}

// Close disconnects every client and stops the server.
func (n *Notifier) Close() {
	n.io.Close(nil)
}
