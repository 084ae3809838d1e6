package blockchain

import "testing"

func TestTransactionIsValid(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{"valid", Transaction{Sender: "alice", Receiver: "bob", Amount: 1}, true},
		{"zero amount", Transaction{Sender: "alice", Receiver: "bob", Amount: 0}, false},
		{"negative amount", Transaction{Sender: "alice", Receiver: "bob", Amount: -1}, false},
		{"same sender and receiver", Transaction{Sender: "alice", Receiver: "alice", Amount: 1}, false},
		{"empty sender", Transaction{Sender: "", Receiver: "bob", Amount: 1}, false},
		{"empty receiver", Transaction{Sender: "alice", Receiver: "", Amount: 1}, false},
		{"coinbase", Transaction{Sender: SystemAccount, Receiver: "alice", Amount: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCoinbase(t *testing.T) {
	coinbase := newCoinbase("alice", 10)
	if !coinbase.IsCoinbase() {
		t.Fatalf("coinbase transaction not recognized")
	}

	regular := NewTransaction("alice", "bob", 1)
	if regular.IsCoinbase() {
		t.Fatalf("regular transaction misclassified as coinbase")
	}
}
