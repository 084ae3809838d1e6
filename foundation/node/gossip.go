package node

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"
)

// broadcastTimeout bounds each individual peer send performed by
// BroadcastTransaction and BroadcastBlock.
const broadcastTimeout = 5 * time.Second

// syncTimeout bounds each individual peer fetch performed by Sync and
// Consensus.
const syncTimeout = 10 * time.Second

// send issues an HTTP request with the given timeout and discards the
// response body once the status code has been checked. It is the
// low-level primitive behind broadcasting and peer registration;
// chain fetches go through fetchChain instead.
func send(ctx context.Context, timeout time.Duration, method, url string, body any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("peer %s responded with status %d", url, resp.StatusCode)
	}
	return nil
}

// fetchChain performs GET on the peer's blockchain endpoint and
// decodes the snapshot, bounded by syncTimeout.
func fetchChain(ctx context.Context, peerAddr string) (blockchain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, peerAddr+"/blockchain", nil)
	if err != nil {
		return blockchain.Snapshot{}, fmt.Errorf("new request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return blockchain.Snapshot{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return blockchain.Snapshot{}, fmt.Errorf("peer %s responded with status %d", peerAddr, resp.StatusCode)
	}

	var snap blockchain.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return blockchain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// BroadcastTransaction sends tx to every known peer in parallel,
// fire-and-forget. Each send has its own bounded timeout; failures are
// logged and discarded, never surfaced to the caller. There is no
// retry queue. Broadcast responsibility lies only with the node that
// originated the transaction - receivers never relay it further.
func (n *Node) BroadcastTransaction(tx blockchain.Transaction) {
	n.broadcast("/receive_transaction", tx)
}

// BroadcastBlock sends b to every known peer in parallel, fire-and-
// forget, with the same semantics as BroadcastTransaction.
func (n *Node) BroadcastBlock(b blockchain.Block) {
	n.broadcast("/receive_block", b)
}

// broadcast fans a POST of body out to every known peer, one goroutine
// per peer, and returns immediately without waiting for any of them -
// true fire-and-forget, so a mine or a transaction submission never
// blocks on the network. Each leg is still bounded by
// broadcastTimeout and its failure is logged, never surfaced.
func (n *Node) broadcast(path string, body any) {
	for _, peerAddr := range n.peers.Copy() {
		go func(peerAddr string) {
			if err := send(context.Background(), broadcastTimeout, http.MethodPost, peerAddr+path, body); err != nil {
				n.evHandler("broadcast: peer %s: %s", peerAddr, err)
			}
		}(peerAddr)
	}
}

// Sync fetches every known peer's chain (bounded by syncTimeout each)
// and, for each one that is both strictly longer than the local chain
// and individually valid, replaces the local chain with it. Multiple
// peers may each trigger a replacement in turn; the final state
// depends on iteration order, which is acceptable because the result
// is still the longest chain seen during the pass.
func (n *Node) Sync() {
	for _, peerAddr := range n.peers.Copy() {
		snap, err := fetchChain(context.Background(), peerAddr)
		if err != nil {
			n.evHandler("sync: peer %s: %s", peerAddr, err)
			continue
		}

		if len(snap.Chain) > n.blockchain.Length() && blockchain.IsValidChain(snap.Chain) {
			n.blockchain.ReplaceChain(snap.Chain)
			n.evHandler("sync: adopted chain of length %d from %s", len(snap.Chain), peerAddr)
		}
	}
}

// Consensus runs the one-shot longest-valid-chain election: among
// every peer chain that is strictly longer than the local chain
// and individually valid, it adopts the single longest, ties broken by
// first-seen. It reports whether the local chain was replaced.
func (n *Node) Consensus() bool {
	localLen := n.blockchain.Length()

	var longest []blockchain.Block
	for _, peerAddr := range n.peers.Copy() {
		snap, err := fetchChain(context.Background(), peerAddr)
		if err != nil {
			n.evHandler("consensus: peer %s: %s", peerAddr, err)
			continue
		}

		if len(snap.Chain) <= localLen || len(snap.Chain) <= len(longest) {
			continue
		}
		if !blockchain.IsValidChain(snap.Chain) {
			continue
		}
		longest = snap.Chain
	}

	if longest == nil {
		return false
	}

	n.blockchain.ReplaceChain(longest)
	n.evHandler("consensus: adopted chain of length %d", len(longest))
	return true
}

// RegisterPeer adds addr to the known peer set. Registration is
// additive only; there is no eviction.
func (n *Node) RegisterPeer(addr string) error {
	if addr == "" {
		return blockchain.ErrInvalidPeerURL
	}
	n.peers.Add(addr)
	return nil
}

// RegisterWithPeer registers addr locally and additionally posts this
// node's own address to the remote's /register_peer endpoint, so the
// relationship is bidirectional on success. A failure to reach the
// peer is logged and swallowed, matching the propagation policy for
// peer-facing failures.
func (n *Node) RegisterWithPeer(addr string) error {
	if err := n.RegisterPeer(addr); err != nil {
		return err
	}

	body := struct {
		PeerURL string `json:"peer_url"`
	}{PeerURL: n.address}

	if err := send(context.Background(), broadcastTimeout, http.MethodPost, addr+"/register_peer", body); err != nil {
		n.evHandler("register_with_peer: %s: %s", addr, err)
	}
	return nil
}

// OutOfSync reports whether at least one known peer's chain is
// currently longer than the local chain.
func (n *Node) OutOfSync() bool {
	localLen := n.blockchain.Length()
	for _, peerAddr := range n.peers.Copy() {
		snap, err := fetchChain(context.Background(), peerAddr)
		if err != nil {
			n.evHandler("status: peer %s: %s", peerAddr, err)
			continue
		}
		if len(snap.Chain) > localLen {
			return true
		}
	}
	return false
}
