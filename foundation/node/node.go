package node

import (
	"fmt"
	"strings"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"
)

// EvHandler is the breadcrumb callback a Node threads down into its
// Blockchain and gossip operations. It is never nil on a constructed
// Node - New installs a no-op default when the caller passes nil.
type EvHandler func(v string, args ...any)

// Config carries everything New needs to construct a Node.
type Config struct {
	Address      string
	Difficulty   int
	MiningReward float64
	EvHandler    EvHandler
}

// Node is the process-level actor described in the data model: a
// network address, a short human-readable id, the Blockchain it owns,
// and the set of peers it gossips with. All mutation of the owned
// Blockchain goes through Blockchain's own locking; the peer set has
// its own, simpler, reader-writer guard.
type Node struct {
	address    string
	nodeID     string
	blockchain *blockchain.Blockchain
	peers      *PeerSet
	evHandler  EvHandler
}

// New constructs a Node with a fresh genesis-only Blockchain and an
// empty peer set.
func New(cfg Config) *Node {
	evHandler := cfg.EvHandler
	if evHandler == nil {
		evHandler = func(v string, args ...any) {}
	}

	return &Node{
		address:    cfg.Address,
		nodeID:     deriveNodeID(cfg.Address),
		blockchain: blockchain.New(cfg.Difficulty, cfg.MiningReward, blockchain.EvHandler(evHandler)),
		peers:      NewPeerSet(),
		evHandler:  evHandler,
	}
}

// deriveNodeID builds the short human-readable label from the port
// component of a node's listening address, e.g. "http://0.0.0.0:5000"
// -> "node-5000".
func deriveNodeID(address string) string {
	port := address
	if i := strings.LastIndex(address, ":"); i != -1 {
		port = address[i+1:]
	}
	return fmt.Sprintf("node-%s", port)
}

// Address returns the node's own network endpoint string.
func (n *Node) Address() string {
	return n.address
}

// NodeID returns the node's short human-readable label.
func (n *Node) NodeID() string {
	return n.nodeID
}

// Blockchain returns the Blockchain this node owns. Every method on
// the returned value is already safe for concurrent use.
func (n *Node) Blockchain() *blockchain.Blockchain {
	return n.blockchain
}

// Peers returns a snapshot of the node's known peer addresses.
func (n *Node) Peers() []string {
	return n.peers.Copy()
}

// AddTransaction runs the local add-transaction gate and, on success,
// broadcasts the transaction to every known peer fire-and-forget. The
// broadcast happens after the transaction is durably in the pending
// pool, so a broadcast failure never leaves local state inconsistent.
func (n *Node) AddTransaction(tx blockchain.Transaction) error {
	if err := n.blockchain.AddTransaction(tx); err != nil {
		return err
	}
	n.BroadcastTransaction(tx)
	return nil
}

// ReceiveTransaction runs the same local add-transaction gate for a
// transaction arriving from a peer, without rebroadcasting it -
// broadcast responsibility belongs only to the originating node.
func (n *Node) ReceiveTransaction(tx blockchain.Transaction) error {
	return n.blockchain.AddTransaction(tx)
}

// Mine packs the pending pool into a new block, solves its proof of
// work, appends it to the local chain, and broadcasts the result to
// every known peer fire-and-forget. The coinbase reward is paid to
// minerAddress as supplied by the caller, not necessarily this node's
// own address. The long-running mine holds the Blockchain's lock for
// its full duration; broadcasting happens only after that lock is
// released.
func (n *Node) Mine(minerAddress string) blockchain.Block {
	block := n.blockchain.MinePendingTransactions(minerAddress)
	n.evHandler("mine: block %d mined: %s", block.Index, block.Hash)
	n.BroadcastBlock(block)
	return block
}

// ReceiveBlock validates and, on success, appends a peer-submitted
// block. It is never rebroadcast further by the receiving node.
func (n *Node) ReceiveBlock(b blockchain.Block) error {
	return n.blockchain.ReceiveBlock(b)
}

// Status is the wire shape served by GET /status.
type Status struct {
	NodeID              string   `json:"node_id"`
	Port                string   `json:"port"`
	ChainLength         int      `json:"chain_length"`
	Peers               []string `json:"peers"`
	PendingTransactions int      `json:"pending_transactions"`
	LastBlockHash       string   `json:"last_block_hash"`
	OutOfSync           bool     `json:"out_of_sync"`
}

// Status reports the node's current self-description, including
// whether any known peer currently holds a longer chain.
func (n *Node) Status() Status {
	port := n.address
	if i := strings.LastIndex(n.address, ":"); i != -1 {
		port = n.address[i+1:]
	}

	return Status{
		NodeID:              n.nodeID,
		Port:                port,
		ChainLength:         n.blockchain.Length(),
		Peers:               n.peers.Copy(),
		PendingTransactions: len(n.blockchain.Pending()),
		LastBlockHash:       n.blockchain.LatestBlock().Hash,
		OutOfSync:           n.OutOfSync(),
	}
}
