package node

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"
)

// serveNode stands up a minimal HTTP server exposing just enough of a
// node's surface (GET /blockchain, POST /receive_block, POST
// /register_peer) for the gossip operations under test to drive real
// HTTP round trips against it, following the pack's integration-test
// style of exercising multi-node behavior through httptest.Server
// rather than calling package functions directly.
func serveNode(t *testing.T, n *Node) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/blockchain", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(n.Blockchain().Snapshot())
	})
	mux.HandleFunc("/receive_block", func(w http.ResponseWriter, r *http.Request) {
		var b blockchain.Block
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := n.ReceiveBlock(b); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	})
	mux.HandleFunc("/register_peer", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PeerURL string `json:"peer_url"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		n.RegisterPeer(body.PeerURL)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTwoNodeConsensusAdoptsLongerChain(t *testing.T) {
	a := newTestNode("http://node-a")
	for i := 0; i < 5; i++ {
		a.Mine(a.Address())
	}
	srvA := serveNode(t, a)

	b := newTestNode("http://node-b")
	for i := 0; i < 3; i++ {
		b.Mine(b.Address())
	}
	b.RegisterPeer(srvA.URL)

	replaced := b.Consensus()
	if !replaced {
		t.Fatalf("expected consensus to replace b's shorter chain")
	}
	if b.Blockchain().Length() != a.Blockchain().Length() {
		t.Fatalf("got length %d, want %d", b.Blockchain().Length(), a.Blockchain().Length())
	}
	if b.Blockchain().Balance(a.Address()) != a.Blockchain().Balance(a.Address()) {
		t.Fatalf("balances did not converge after consensus")
	}
}

func TestConsensusNoLongerChainReturnsFalse(t *testing.T) {
	a := newTestNode("http://node-a")
	a.Mine(a.Address())
	srvA := serveNode(t, a)

	b := newTestNode("http://node-b")
	for i := 0; i < 3; i++ {
		b.Mine(b.Address())
	}
	b.RegisterPeer(srvA.URL)

	if b.Consensus() {
		t.Fatalf("expected consensus to keep the longer local chain")
	}
}

func TestRegisterWithPeerIsBidirectional(t *testing.T) {
	a := newTestNode("http://node-a")
	srvA := serveNode(t, a)

	b := newTestNode("http://node-b")
	if err := b.RegisterWithPeer(srvA.URL); err != nil {
		t.Fatalf("RegisterWithPeer: %v", err)
	}

	if !b.peers.Has(srvA.URL) {
		t.Fatalf("RegisterWithPeer did not register the peer locally")
	}
	if !a.peers.Has(b.Address()) {
		t.Fatalf("peer registration was not bidirectional")
	}
}
