package blockchain

import "time"

// SystemAccount is the reserved sender identifier for coinbase rewards.
// It is the only way new coins enter circulation and is exempt from the
// balance check in Blockchain.AddTransaction.
const SystemAccount = "System"

// Transaction is an immutable record of a value transfer between two
// addresses. Once constructed a Transaction is never mutated; it is
// copied by value whenever it crosses a package boundary (the pending
// pool, a mined block, the wire).
type Transaction struct {
	Sender    string  `json:"sender"`
	Receiver  string  `json:"receiver"`
	Amount    float64 `json:"amount"`
	Timestamp float64 `json:"timestamp"`
}

// NewTransaction constructs a Transaction with the current wall-clock
// time as its timestamp. Callers that need a deterministic timestamp
// (tests, replayed wire data) should set the Timestamp field directly
// after construction.
func NewTransaction(sender, receiver string, amount float64) Transaction {
	return Transaction{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
	}
}

// newCoinbase constructs the System -> miner reward transaction appended
// to the pending list at the start of mining.
func newCoinbase(miner string, reward float64) Transaction {
	return NewTransaction(SystemAccount, miner, reward)
}

// IsValid reports whether the transaction satisfies the validity
// invariant: a positive amount, a non-empty sender and receiver, and a
// sender distinct from the receiver.
func (tx Transaction) IsValid() bool {
	return tx.Amount > 0 && tx.Sender != "" && tx.Receiver != "" && tx.Sender != tx.Receiver
}

// IsCoinbase reports whether tx is a System-issued reward, which is
// exempt from the solvency check in Blockchain.AddTransaction.
func (tx Transaction) IsCoinbase() bool {
	return tx.Sender == SystemAccount
}
