package session

import (
	"fmt"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/greenops"
)

// Session is the view state of one page view.
type Session struct {
	content *catalog.Content

	base     greenops.CalculatorInput
	input    greenops.CalculatorInput
	selected *catalog.UsageCategory
	pledges  PledgeSet
	tips     map[int]bool

	reveals *RevealBoard
}

// NewSession returns a session over content with the calculator at its
// default position, nothing selected and every pledge unchecked.
func NewSession(content *catalog.Content) *Session {
	return &Session{
		content: content,
		base:    greenops.DefaultInput(),
		input:   greenops.DefaultInput(),
		pledges: NewPledgeSet(),
		tips:    make(map[int]bool),
		reveals: NewRevealBoard(),
	}
}

// NewSessionWithDefaults returns a session whose calculator starts, and is
// encoded relative to, defaults instead of the built-in position.
func NewSessionWithDefaults(content *catalog.Content, defaults greenops.CalculatorInput) (*Session, error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	s := NewSession(content)
	s.base = defaults
	s.input = defaults
	return s, nil
}

// Content returns the catalog the session renders.
func (s *Session) Content() *catalog.Content {
	return s.content
}

// Input returns the current calculator position.
func (s *Session) Input() greenops.CalculatorInput {
	return s.input
}

// SetInput replaces both calculator values at once.
func (s *Session) SetInput(in greenops.CalculatorInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	s.input = in
	return nil
}

// SetQueryCount moves the queries-per-day slider. Values outside the slider
// range are rejected; widgets clamp before calling.
func (s *Session) SetQueryCount(n int) error {
	in := s.input
	in.QueryCount = n
	return s.SetInput(in)
}

// SetLengthTier moves the response-length slider.
func (s *Session) SetLengthTier(t greenops.LengthTier) error {
	in := s.input
	in.LengthTier = t
	return s.SetInput(in)
}

// Estimate derives the calculator output from the current input. It is
// recomputed on every call.
func (s *Session) Estimate() greenops.DerivedEstimate {
	// The input is validated on every write, so this cannot fail.
	return greenops.MustEstimate(s.input)
}

// SelectItem opens the details overlay for item, replacing any prior
// selection.
func (s *Session) SelectItem(item catalog.UsageCategory) {
	s.selected = &item
}

// SelectRank selects the category with the given rank.
func (s *Session) SelectRank(rank int) error {
	item, ok := s.content.ByRank(rank)
	if !ok {
		return fmt.Errorf("%w: rank %d", ErrUnknownItem, rank)
	}
	s.SelectItem(item)
	return nil
}

// ClearSelection closes the details overlay. It is unconditional and
// idempotent.
func (s *Session) ClearSelection() {
	s.selected = nil
}

// Selected returns the category shown in the details overlay, if any.
func (s *Session) Selected() (catalog.UsageCategory, bool) {
	if s.selected == nil {
		return catalog.UsageCategory{}, false
	}
	return *s.selected, true
}

// TogglePledge flips one pledge checkbox and returns its new value.
func (s *Session) TogglePledge(key catalog.PledgeKey) (bool, error) {
	return s.pledges.Toggle(key)
}

// Pledges returns a copy of the pledge checkboxes.
func (s *Session) Pledges() PledgeSet {
	return s.pledges.Clone()
}

// Pledged reports whether key is checked. Unknown keys are never checked.
func (s *Session) Pledged(key catalog.PledgeKey) bool {
	return s.pledges[key]
}

// PledgeCount returns the number of checked pledges.
func (s *Session) PledgeCount() int {
	return s.pledges.Count()
}

// ToggleTip expands or collapses the examples of one tip.
func (s *Session) ToggleTip(number int) error {
	if _, ok := s.content.TipByNumber(number); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTip, number)
	}
	if s.tips[number] {
		delete(s.tips, number)
	} else {
		s.tips[number] = true
	}
	return nil
}

// TipExpanded reports whether the tip's examples are shown.
func (s *Session) TipExpanded(number int) bool {
	return s.tips[number]
}

// Reveals returns the session's reveal board.
func (s *Session) Reveals() *RevealBoard {
	return s.reveals
}
