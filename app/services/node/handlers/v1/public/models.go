package public

import "github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/blockchain"

// mineRequest is the body of POST /mine.
type mineRequest struct {
	MinerAddress string `json:"miner_address"`
}

// mineResponse is the body returned by a successful POST /mine.
type mineResponse struct {
	Message string           `json:"message"`
	Block   blockchain.Block `json:"block"`
}

// transactionRequest is the body of POST /transaction and the wire
// shape of a transaction gossiped via POST /receive_transaction.
type transactionRequest struct {
	Sender    string  `json:"sender" validate:"required"`
	Receiver  string  `json:"receiver" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Timestamp float64 `json:"timestamp"`
}

// messageResponse is the generic {"message": "..."} shape returned by
// several endpoints on success.
type messageResponse struct {
	Message string `json:"message"`
}

// balanceResponse is the body of GET /balance/<address>.
type balanceResponse struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// registerPeerRequest is the body of POST /register_peer.
type registerPeerRequest struct {
	PeerURL string `json:"peer_url" validate:"required"`
}
