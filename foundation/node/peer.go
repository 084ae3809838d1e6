package node

import "sync"

// PeerSet represents the collection of known peer addresses. It is a
// concurrently-read, occasionally-written collection: membership tests
// performed by broadcast loops iterate over a Copy taken under lock,
// never the live set itself.
type PeerSet struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

// NewPeerSet constructs an empty set of peers.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		set: make(map[string]struct{}),
	}
}

// Add registers addr in the set. Membership is additive only; there is
// no eviction. Adding an address already present is a no-op and
// reports false.
func (ps *PeerSet) Add(addr string) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.set[addr]; exists {
		return false
	}

	ps.set[addr] = struct{}{}
	return true
}

// Has reports whether addr is a known peer.
func (ps *PeerSet) Has(addr string) bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	_, exists := ps.set[addr]
	return exists
}

// Copy returns a snapshot slice of the currently known peer addresses,
// safe to range over without holding the PeerSet's lock.
func (ps *PeerSet) Copy() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	addrs := make([]string, 0, len(ps.set))
	for addr := range ps.set {
		addrs = append(addrs, addr)
	}
	return addrs
}

// Len reports the number of known peers.
func (ps *PeerSet) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.set)
}
