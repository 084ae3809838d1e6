package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// genesisPreviousHash is the literal previous-hash value carried by the
// genesis block in place of a real predecessor.
const genesisPreviousHash = "0"

// Block is the unit of append to a Blockchain. A Block is built by the
// miner with Nonce 0 and Hash unset; mining mutates Nonce and Hash in
// place until the difficulty target is met, after which the Block is
// frozen and never changed again.
type Block struct {
	Index        uint64        `json:"index"`
	Transactions []Transaction `json:"transactions"`
	PreviousHash string        `json:"previous_hash"`
	Timestamp    float64       `json:"timestamp"`
	Nonce        uint64        `json:"nonce"`
	Hash         string        `json:"hash"`
}

// txCanonical and blockCanonical pin the exact key order the hash
// preimage must be serialized in. Go's encoding/json emits struct
// fields in declaration order, so the field order below IS the wire
// order: lexicographic by JSON key, matching the canonical
// serialization the block hash is computed over.
type txCanonical struct {
	Amount    float64 `json:"amount"`
	Receiver  string  `json:"receiver"`
	Sender    string  `json:"sender"`
	Timestamp float64 `json:"timestamp"`
}

type blockCanonical struct {
	Index        uint64        `json:"index"`
	Nonce        uint64        `json:"nonce"`
	PreviousHash string        `json:"previous_hash"`
	Timestamp    float64       `json:"timestamp"`
	Transactions []txCanonical `json:"transactions"`
}

// canonicalJSON renders the byte sequence a block's hash is computed
// over: {index, nonce, previous_hash, timestamp, transactions}, each
// transaction rendered as {amount, receiver, sender, timestamp}. This
// must be reproduced bit-exactly by every node; it is the cross-node
// identity of a block.
func canonicalJSON(b Block) []byte {
	txs := make([]txCanonical, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = txCanonical{
			Amount:    tx.Amount,
			Receiver:  tx.Receiver,
			Sender:    tx.Sender,
			Timestamp: tx.Timestamp,
		}
	}

	c := blockCanonical{
		Index:        b.Index,
		Nonce:        b.Nonce,
		PreviousHash: b.PreviousHash,
		Timestamp:    b.Timestamp,
		Transactions: txs,
	}

	// A canonical struct marshal never fails: every field is a plain
	// number or string.
	data, _ := json.Marshal(c)
	return data
}

// hashBlock computes the hex SHA-256 hash of a block's canonical
// serialization. It does not read or write b.Hash.
func hashBlock(b Block) string {
	sum := sha256.Sum256(canonicalJSON(b))
	return hex.EncodeToString(sum[:])
}

// newGenesisBlock constructs the deterministic, unmined block at index
// 0: empty transaction list, previous_hash "0", timestamp 0, nonce 0.
// Every node therefore builds the same genesis block with the same
// hash, computed once at construction and never touched by mining.
func newGenesisBlock() Block {
	b := Block{
		Index:        0,
		Transactions: []Transaction{},
		PreviousHash: genesisPreviousHash,
		Timestamp:    0,
		Nonce:        0,
	}
	b.Hash = hashBlock(b)
	return b
}

// newCandidateBlock builds the next block to be mined: the smallest
// possible Block satisfying the chain's linking invariants, with
// Nonce 0 and no Hash yet assigned.
func newCandidateBlock(index uint64, previousHash string, txs []Transaction) Block {
	return Block{
		Index:        index,
		Transactions: txs,
		PreviousHash: previousHash,
		Timestamp:    float64(time.Now().UnixNano()) / 1e9,
		Nonce:        0,
	}
}

// hasDifficultyPrefix reports whether hash begins with difficulty
// hexadecimal '0' characters.
func hasDifficultyPrefix(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if len(hash) < difficulty {
		return false
	}
	return hash[:difficulty] == strings.Repeat("0", difficulty)
}

// mine solves the proof-of-work for b in place: starting from nonce 0,
// it increments the nonce and recomputes the hash until the first
// difficulty hex characters of the hash are all '0'. There is no early
// exit; mining runs to completion. evHandler, if non-nil, receives
// periodic breadcrumbs so a long mine is observable.
func mine(b Block, difficulty int, evHandler func(v string, args ...any)) Block {
	const breadcrumbEvery = 10_000

	b.Nonce = 0
	hash := hashBlock(b)

	for !hasDifficultyPrefix(hash, difficulty) {
		b.Nonce++
		if evHandler != nil && b.Nonce%breadcrumbEvery == 0 {
			evHandler("mining: block %d: nonce %d", b.Index, b.Nonce)
		}
		hash = hashBlock(b)
	}

	b.Hash = hash
	return b
}
