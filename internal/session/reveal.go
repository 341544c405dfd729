package session

import "time"

// RevealState is the entrance state of one card, tile or bar.
type RevealState int

const (
	// Hidden is the initial state.
	Hidden RevealState = iota
	// Visible is terminal; there is no transition back to Hidden.
	Visible
)

// String returns the state name.
func (s RevealState) String() string {
	if s == Visible {
		return "Visible"
	}
	return "Hidden"
}

// Ticket authorizes one scheduled Hidden to Visible transition. The timer that
// owns it presents it back to Fire once Delay has elapsed.
type Ticket struct {
	ID    string
	Delay time.Duration
	seq   uint64
}

type revealEntry struct {
	state   RevealState
	pending uint64 // seq of the live ticket, 0 when none
}

// RevealBoard tracks one-shot, cancellable entrance transitions.
//
// Scheduling hands out a Ticket; the caller arranges for the ticket to come
// back after its delay (tea.Tick in the terminal UI). Cancel suppresses a
// pending transition so a late timer has no effect. No ordering is implied
// between different ids.
type RevealBoard struct {
	entries map[string]*revealEntry
	seq     uint64
	closed  bool
}

// NewRevealBoard returns an empty board; unknown ids are Hidden.
func NewRevealBoard() *RevealBoard {
	return &RevealBoard{entries: make(map[string]*revealEntry)}
}

// Schedule registers a pending transition for id after delay. It returns
// false when id is already visible or pending, or the board is closed.
func (b *RevealBoard) Schedule(id string, delay time.Duration) (Ticket, bool) {
	if b.closed {
		return Ticket{}, false
	}
	e := b.entry(id)
	if e.state == Visible || e.pending != 0 {
		return Ticket{}, false
	}
	b.seq++
	e.pending = b.seq
	return Ticket{ID: id, Delay: delay, seq: b.seq}, true
}

// Fire applies the ticket's transition. It reports whether the id became
// visible; stale or cancelled tickets are ignored.
func (b *RevealBoard) Fire(t Ticket) bool {
	if b.closed {
		return false
	}
	e, ok := b.entries[t.ID]
	if !ok || e.pending == 0 || e.pending != t.seq {
		return false
	}
	e.pending = 0
	e.state = Visible
	return true
}

// Cancel suppresses the pending transition of id, if any. The id stays
// Hidden and may be scheduled again.
func (b *RevealBoard) Cancel(id string) {
	if e, ok := b.entries[id]; ok {
		e.pending = 0
	}
}

// CancelAll suppresses every pending transition and closes the board. It is
// called when the owning view is torn down.
func (b *RevealBoard) CancelAll() {
	for _, e := range b.entries {
		e.pending = 0
	}
	b.closed = true
}

// RevealNow makes id visible immediately, dropping any pending ticket.
func (b *RevealBoard) RevealNow(id string) {
	e := b.entry(id)
	e.pending = 0
	e.state = Visible
}

// Visible reports whether id has been revealed.
func (b *RevealBoard) Visible(id string) bool {
	return b.State(id) == Visible
}

// State returns the entrance state of id.
func (b *RevealBoard) State(id string) RevealState {
	if e, ok := b.entries[id]; ok {
		return e.state
	}
	return Hidden
}

// Pending reports whether id has a live ticket.
func (b *RevealBoard) Pending(id string) bool {
	e, ok := b.entries[id]
	return ok && e.pending != 0
}

func (b *RevealBoard) entry(id string) *revealEntry {
	e, ok := b.entries[id]
	if !ok {
		e = &revealEntry{}
		b.entries[id] = e
	}
	return e
}
