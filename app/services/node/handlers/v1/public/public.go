// Package public maintains the group of handlers a client or peer
// interacts with directly: the full HTTP surface of a node.
package public

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dimfeld/httptreemux/v5"
	"github.com/gorilla/websocket"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/business/web/errs"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/events"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/node"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of public endpoints for a node.
type Handlers struct {
	Log  *zap.SugaredLogger
	Node *node.Node
	Evts *events.Events
	WS   websocket.Upgrader
}

// Root returns a small JSON banner so a browser hitting the node
// doesn't 404.
func (h *Handlers) Root(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	data := struct {
		NodeID string `json:"node_id"`
	}{
		NodeID: h.Node.NodeID(),
	}
	return web.Respond(ctx, w, data, http.StatusOK)
}

// Blockchain returns the full ledger state.
func (h *Handlers) Blockchain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.Blockchain().Snapshot(), http.StatusOK)
}

// Mine triggers one mining round and broadcasts the resulting block.
func (h *Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req mineRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	minerAddress := req.MinerAddress
	if minerAddress == "" {
		minerAddress = h.Node.NodeID()
	}

	block := h.Node.Mine(minerAddress)
	h.Evts.Send(eventLine("block_mined", block))

	resp := mineResponse{
		Message: "New block mined",
		Block:   block,
	}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Transaction accepts a new transaction from a client, runs the local
// add-transaction gate, and broadcasts it to peers on success.
func (h *Handlers) Transaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req transactionRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	tx := blockchain.NewTransaction(req.Sender, req.Receiver, req.Amount)
	if req.Timestamp != 0 {
		tx.Timestamp = req.Timestamp
	}

	if err := h.Node.AddTransaction(tx); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Evts.Send(eventLine("transaction_accepted", tx))

	return web.Respond(ctx, w, messageResponse{Message: "Transaction will be added"}, http.StatusOK)
}

// Balance returns the replay-derived balance of the address named in
// the path.
func (h *Handlers) Balance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	params := httptreemux.ContextParams(ctx)
	address := params["address"]

	resp := balanceResponse{
		Address: address,
		Balance: h.Node.Blockchain().Balance(address),
	}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Peers returns the node's known peer addresses.
func (h *Handlers) Peers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.Peers(), http.StatusOK)
}

// RegisterPeer adds the submitted URL to the peer set.
func (h *Handlers) RegisterPeer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req registerPeerRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.Node.RegisterPeer(req.PeerURL); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	return web.Respond(ctx, w, messageResponse{Message: "Peer added"}, http.StatusOK)
}

// Sync fetches every peer's chain and adopts any that is strictly
// longer and valid.
func (h *Handlers) Sync(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Node.Sync()
	return web.Respond(ctx, w, messageResponse{Message: "Sync complete"}, http.StatusOK)
}

// Consensus runs the longest-valid-chain election against known peers.
func (h *Handlers) Consensus(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced := h.Node.Consensus()

	message := "Our chain is authoritative"
	if replaced {
		message = "Our chain was replaced"
	}
	return web.Respond(ctx, w, messageResponse{Message: message}, http.StatusOK)
}

// ReceiveBlock validates and, on success, appends a peer-submitted
// block.
func (h *Handlers) ReceiveBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var block blockchain.Block
	if err := web.Decode(r, &block); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.Node.ReceiveBlock(block); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Evts.Send(eventLine("block_received", block))

	return web.Respond(ctx, w, messageResponse{Message: "Block added to the chain"}, http.StatusOK)
}

// ReceiveTransaction runs the local add-transaction gate for a
// transaction arriving from a peer. No relay-on-forward: this node
// does not rebroadcast a received transaction.
func (h *Handlers) ReceiveTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req transactionRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	tx := blockchain.NewTransaction(req.Sender, req.Receiver, req.Amount)
	if req.Timestamp != 0 {
		tx.Timestamp = req.Timestamp
	}

	message := "Transaction received"
	if err := h.Node.ReceiveTransaction(tx); err != nil {
		message = err.Error()
	} else {
		h.Evts.Send(eventLine("transaction_received", tx))
	}

	return web.Respond(ctx, w, messageResponse{Message: message}, http.StatusOK)
}

// Status reports the node's self-description, including whether a
// peer currently holds a longer chain.
func (h *Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Node.Status(), http.StatusOK)
}

// Events upgrades the connection to a websocket and streams a JSON
// line for every mined block, accepted peer block, and accepted
// transaction, backed by the node's events hub. This supplements the
// dropped browser dashboard with the data channel it would need.
func (h *Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	conn, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
	defer conn.Close()

	traceID := web.GetTraceID(ctx)
	ch := h.Evts.Acquire(traceID)
	defer h.Evts.Release(traceID)

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// eventLine renders a named event and its payload as a single JSON
// line for the events hub.
func eventLine(kind string, payload any) string {
	data, err := json.Marshal(struct {
		Kind    string `json:"kind"`
		Payload any    `json:"payload"`
	}{Kind: kind, Payload: payload})
	if err != nil {
		return kind
	}
	return string(data)
}
