// Package v1 binds the public handler group onto an App's route
// table.
package v1

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/app/services/node/handlers/v1/public"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/events"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/node"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
	"go.uber.org/zap"
)

// Config holds everything required to wire up the v1 routes.
type Config struct {
	Log  *zap.SugaredLogger
	Node *node.Node
	Evts *events.Events
}

const version = "v1"

// Routes binds all the version 1 routes onto app.
func Routes(app *web.App, cfg Config) {
	h := &public.Handlers{
		Log:  cfg.Log,
		Node: cfg.Node,
		Evts: cfg.Evts,
		WS: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	app.Handle(http.MethodGet, "", "/", h.Root)
	app.Handle(http.MethodGet, "", "/blockchain", h.Blockchain)
	app.Handle(http.MethodPost, "", "/mine", h.Mine)
	app.Handle(http.MethodPost, "", "/transaction", h.Transaction)
	app.Handle(http.MethodGet, "", "/balance/:address", h.Balance)
	app.Handle(http.MethodGet, "", "/peers", h.Peers)
	app.Handle(http.MethodPost, "", "/register_peer", h.RegisterPeer)
	app.Handle(http.MethodGet, "", "/sync", h.Sync)
	app.Handle(http.MethodGet, "", "/consensus", h.Consensus)
	app.Handle(http.MethodPost, "", "/receive_block", h.ReceiveBlock)
	app.Handle(http.MethodPost, "", "/receive_transaction", h.ReceiveTransaction)
	app.Handle(http.MethodGet, "", "/status", h.Status)
	app.Handle(http.MethodGet, version, "/node/events", h.Events)
}
