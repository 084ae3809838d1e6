package blockchain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGenesisBlockInvariants(t *testing.T) {
	g := newGenesisBlock()

	if g.Index != 0 {
		t.Fatalf("got index %d, want 0", g.Index)
	}
	if g.PreviousHash != "0" {
		t.Fatalf("got previous_hash %q, want \"0\"", g.PreviousHash)
	}
	if len(g.Transactions) != 0 {
		t.Fatalf("got %d transactions, want 0", len(g.Transactions))
	}
	if g.Hash != hashBlock(g) {
		t.Fatalf("genesis hash does not reproduce")
	}
}

func TestCanonicalJSONKeyOrder(t *testing.T) {
	b := Block{
		Index:        1,
		PreviousHash: "abc",
		Timestamp:    100,
		Nonce:        5,
		Transactions: []Transaction{
			{Sender: "alice", Receiver: "bob", Amount: 3, Timestamp: 200},
		},
	}

	data := canonicalJSON(b)

	idxIndex := strings.Index(string(data), `"index"`)
	idxNonce := strings.Index(string(data), `"nonce"`)
	idxPrev := strings.Index(string(data), `"previous_hash"`)
	idxTime := strings.Index(string(data), `"timestamp"`)
	idxTxs := strings.Index(string(data), `"transactions"`)

	if !(idxIndex < idxNonce && idxNonce < idxPrev && idxPrev < idxTime && idxTime < idxTxs) {
		t.Fatalf("block keys not in lexicographic order: %s", data)
	}

	idxAmount := strings.LastIndex(string(data), `"amount"`)
	idxReceiver := strings.LastIndex(string(data), `"receiver"`)
	idxSender := strings.LastIndex(string(data), `"sender"`)
	idxTxTime := strings.LastIndex(string(data), `"timestamp"`)

	if !(idxAmount < idxReceiver && idxReceiver < idxSender && idxSender < idxTxTime) {
		t.Fatalf("transaction keys not in lexicographic order: %s", data)
	}

	var round map[string]any
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("canonical json does not parse: %v", err)
	}
}

func TestHasDifficultyPrefix(t *testing.T) {
	tests := []struct {
		hash       string
		difficulty int
		want       bool
	}{
		{"00abc", 2, true},
		{"0abc", 2, false},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		if got := hasDifficultyPrefix(tt.hash, tt.difficulty); got != tt.want {
			t.Errorf("hasDifficultyPrefix(%q, %d) = %v, want %v", tt.hash, tt.difficulty, got, tt.want)
		}
	}
}

func TestMineProducesDifficultyPrefixAndReproducibleHash(t *testing.T) {
	candidate := newCandidateBlock(1, "deadbeef", []Transaction{
		{Sender: SystemAccount, Receiver: "alice", Amount: 10, Timestamp: 1},
	})

	mined := mine(candidate, 2, nil)

	if !hasDifficultyPrefix(mined.Hash, 2) {
		t.Fatalf("mined hash %q does not start with 2 zeros", mined.Hash)
	}
	if mined.Hash != hashBlock(mined) {
		t.Fatalf("mined hash does not reproduce under rehash")
	}
}

func TestMineDifficultyZeroSucceedsOnNonceZero(t *testing.T) {
	candidate := newCandidateBlock(1, "deadbeef", nil)

	mined := mine(candidate, 0, nil)

	if mined.Nonce != 0 {
		t.Fatalf("got nonce %d, want 0 for difficulty 0", mined.Nonce)
	}
}
