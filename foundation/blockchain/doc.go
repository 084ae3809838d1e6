// Package blockchain implements the ledger core: transactions, blocks,
// proof-of-work mining, and the chain aggregate that owns pending
// transactions and derived balances.
//
// A Blockchain is the only piece of shared mutable state a node has, and it
// guards itself with a single internal lock: every exported method takes
// that lock, so callers never lock a Blockchain themselves.
package blockchain
