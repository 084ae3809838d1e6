package blockchain

import "testing"

func TestNewHasSingleGenesisBlock(t *testing.T) {
	bc := New(2, 10, nil)

	chain := bc.Chain()
	if len(chain) != 1 {
		t.Fatalf("got chain length %d, want 1", len(chain))
	}
	if chain[0].Index != 0 || chain[0].PreviousHash != "0" || len(chain[0].Transactions) != 0 {
		t.Fatalf("genesis block malformed: %+v", chain[0])
	}
}

func TestMineWithNoPendingTransactions(t *testing.T) {
	bc := New(2, 10, nil)

	block := bc.MinePendingTransactions("alice")

	if block.Index != 1 {
		t.Fatalf("got index %d, want 1", block.Index)
	}
	if len(block.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1 (the coinbase)", len(block.Transactions))
	}
	tx := block.Transactions[0]
	if tx.Sender != SystemAccount || tx.Receiver != "alice" || tx.Amount != 10 {
		t.Fatalf("unexpected coinbase transaction: %+v", tx)
	}
	if !hasDifficultyPrefix(block.Hash, 2) {
		t.Fatalf("block hash %q does not meet difficulty 2", block.Hash)
	}
	if got := bc.Balance("alice"); got != 10 {
		t.Fatalf("got balance %v, want 10", got)
	}
	if len(bc.Pending()) != 0 {
		t.Fatalf("pending pool not cleared after mining")
	}
}

func TestTransferThenMine(t *testing.T) {
	bc := New(2, 10, nil)
	bc.MinePendingTransactions("alice") // alice: 10

	if err := bc.AddTransaction(NewTransaction("alice", "bob", 3)); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	bc.MinePendingTransactions("alice") // alice: 10 - 3 + 10 (reward) = 17

	if got := bc.Balance("alice"); got != 17 {
		t.Fatalf("alice balance = %v, want 17", got)
	}
	if got := bc.Balance("bob"); got != 3 {
		t.Fatalf("bob balance = %v, want 3", got)
	}
}

func TestAddTransactionRejectsOverdraft(t *testing.T) {
	bc := New(2, 10, nil)
	bc.MinePendingTransactions("alice") // alice: 10

	err := bc.AddTransaction(NewTransaction("alice", "bob", 11))
	if err != ErrInsufficientBalance {
		t.Fatalf("got err %v, want ErrInsufficientBalance", err)
	}
	if len(bc.Pending()) != 0 {
		t.Fatalf("pending list mutated after rejected transaction")
	}
}

func TestAddTransactionRejectsInvalid(t *testing.T) {
	bc := New(2, 10, nil)

	err := bc.AddTransaction(Transaction{Sender: "alice", Receiver: "alice", Amount: 1})
	if err != ErrInvalidTransaction {
		t.Fatalf("got err %v, want ErrInvalidTransaction", err)
	}
}

func TestReceiveBlockAcceptsStrictNext(t *testing.T) {
	bc := New(2, 10, nil)
	mined := bc.MinePendingTransactions("alice")

	other := New(2, 10, nil)
	if err := other.ReceiveBlock(mined); err != nil {
		t.Fatalf("ReceiveBlock: %v", err)
	}
	if other.Length() != 2 {
		t.Fatalf("got length %d, want 2", other.Length())
	}
	if got := other.Balance("alice"); got != 10 {
		t.Fatalf("balance after receive = %v, want 10", got)
	}
}

func TestReceiveBlockRejectsDuplicateIndex(t *testing.T) {
	bc := New(2, 10, nil)
	mined := bc.MinePendingTransactions("alice")

	dup := mined
	dup.Index = 0

	if err := bc.ReceiveBlock(dup); err != ErrBlockRejected {
		t.Fatalf("got err %v, want ErrBlockRejected", err)
	}
}

func TestReceiveBlockRejectsGap(t *testing.T) {
	bc := New(2, 10, nil)

	gap := newCandidateBlock(5, bc.LatestBlock().Hash, nil)
	gap = mine(gap, 2, nil)

	if err := bc.ReceiveBlock(gap); err != ErrBlockRejected {
		t.Fatalf("got err %v, want ErrBlockRejected", err)
	}
}

func TestReceiveBlockRejectsBadHash(t *testing.T) {
	bc := New(2, 10, nil)

	next := newCandidateBlock(1, bc.LatestBlock().Hash, nil)
	next = mine(next, 2, nil)
	next.Hash = "tampered"

	if err := bc.ReceiveBlock(next); err != ErrBlockRejected {
		t.Fatalf("got err %v, want ErrBlockRejected", err)
	}
}

func TestIsValidChainDetectsTamper(t *testing.T) {
	bc := New(2, 10, nil)
	bc.MinePendingTransactions("alice")
	chain := bc.Chain()

	if !IsValidChain(chain) {
		t.Fatalf("freshly mined chain reported invalid")
	}

	chain[1].Transactions[0].Amount = 999
	if IsValidChain(chain) {
		t.Fatalf("tampered chain reported valid")
	}
}

func TestReplaceChainRebuildsBalances(t *testing.T) {
	source := New(2, 10, nil)
	source.MinePendingTransactions("alice")
	source.AddTransaction(NewTransaction("alice", "bob", 3))
	source.MinePendingTransactions("alice")

	target := New(2, 10, nil)
	target.ReplaceChain(source.Chain())

	if target.Balance("alice") != source.Balance("alice") {
		t.Fatalf("balances diverged after ReplaceChain")
	}
	if target.Balance("bob") != source.Balance("bob") {
		t.Fatalf("balances diverged after ReplaceChain")
	}
}

func TestReplaceChainIdempotentOnUnchangedChain(t *testing.T) {
	bc := New(2, 10, nil)
	bc.MinePendingTransactions("alice")
	before := bc.Chain()

	bc.ReplaceChain(bc.Chain())
	after := bc.Chain()

	if len(before) != len(after) {
		t.Fatalf("chain length changed on a no-op replace")
	}
}
