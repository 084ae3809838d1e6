package node

import (
	"testing"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"
)

func newTestNode(addr string) *Node {
	return New(Config{
		Address:      addr,
		Difficulty:   1,
		MiningReward: 10,
	})
}

func TestNodeIDDerivedFromPort(t *testing.T) {
	n := newTestNode("http://0.0.0.0:5000")
	if got, want := n.NodeID(), "node-5000"; got != want {
		t.Fatalf("got node id %q, want %q", got, want)
	}
}

func TestMineWithNoTransactions(t *testing.T) {
	n := newTestNode("http://0.0.0.0:5000")

	block := n.Mine(n.Address())
	if block.Index != 1 {
		t.Fatalf("got index %d, want 1", block.Index)
	}
	if n.Blockchain().Balance(n.Address()) != 10 {
		t.Fatalf("miner balance = %v, want 10", n.Blockchain().Balance(n.Address()))
	}
}

func TestAddTransactionOverdraftRejected(t *testing.T) {
	n := newTestNode("http://0.0.0.0:5000")
	n.Mine(n.Address()) // miner self-reward

	err := n.AddTransaction(blockchain.NewTransaction(n.Address(), "bob", 999))
	if err != blockchain.ErrInsufficientBalance {
		t.Fatalf("got err %v, want ErrInsufficientBalance", err)
	}
}

func TestRegisterPeerRejectsEmpty(t *testing.T) {
	n := newTestNode("http://0.0.0.0:5000")

	if err := n.RegisterPeer(""); err != blockchain.ErrInvalidPeerURL {
		t.Fatalf("got err %v, want ErrInvalidPeerURL", err)
	}
}

func TestRegisterPeerIsAdditive(t *testing.T) {
	n := newTestNode("http://0.0.0.0:5000")

	n.RegisterPeer("http://0.0.0.0:5001")
	n.RegisterPeer("http://0.0.0.0:5001")

	if got := len(n.Peers()); got != 1 {
		t.Fatalf("got %d peers, want 1 after duplicate registration", got)
	}
}
