package session

import (
	"fmt"

	"github.com/rshade/mindful/internal/catalog"
)

// PledgeSet maps each fixed pledge key to its checkbox value.
type PledgeSet map[catalog.PledgeKey]bool

// NewPledgeSet returns a set with every pledge unchecked.
func NewPledgeSet() PledgeSet {
	ps := make(PledgeSet, len(catalog.PledgeKeys))
	for _, k := range catalog.PledgeKeys {
		ps[k] = false
	}
	return ps
}

// Toggle flips key and returns its new value. Other keys are untouched.
func (ps PledgeSet) Toggle(key catalog.PledgeKey) (bool, error) {
	if !catalog.IsPledgeKey(key) {
		return false, fmt.Errorf("%w: %q", ErrUnknownPledge, key)
	}
	ps[key] = !ps[key]
	return ps[key], nil
}

// Count returns the number of checked pledges.
func (ps PledgeSet) Count() int {
	n := 0
	for _, v := range ps {
		if v {
			n++
		}
	}
	return n
}

// Checked returns the checked keys in display order.
func (ps PledgeSet) Checked() []catalog.PledgeKey {
	var out []catalog.PledgeKey
	for _, k := range catalog.PledgeKeys {
		if ps[k] {
			out = append(out, k)
		}
	}
	return out
}

// Clone returns an independent copy.
func (ps PledgeSet) Clone() PledgeSet {
	out := make(PledgeSet, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}
