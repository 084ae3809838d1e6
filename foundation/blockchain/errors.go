package blockchain

import "errors"

// These are the sentinel errors the ledger core returns. The web layer
// maps each of these to a user-visible message and HTTP status; see
// business/web/errs.
var (
	// ErrInvalidTransaction is returned when a transaction fails its
	// validity invariant (amount, sender, receiver).
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrInsufficientBalance is returned when a sender's replay-derived
	// balance cannot cover the transaction amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBlockRejected is returned when an inbound block fails the
	// index, link, or hash checks in ReceiveBlock.
	ErrBlockRejected = errors.New("block rejected")

	// ErrInvalidPeerURL is returned when a peer registration request
	// carries a missing or empty URL.
	ErrInvalidPeerURL = errors.New("invalid peer url")
)
