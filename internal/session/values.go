package session

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/greenops"
)

// Query-string parameter names used by the HTML page.
const (
	ParamQueries = "q"
	ParamLength  = "len"
	ParamItem    = "item"
	ParamPledge  = "pledge"
	ParamTip     = "tip"
)

// FromValues rebuilds a session from query-string parameters. Missing
// parameters keep their defaults; malformed or out-of-range values are
// rejected rather than clamped.
func FromValues(v url.Values, content *catalog.Content) (*Session, error) {
	return FromValuesWithDefaults(v, content, greenops.DefaultInput())
}

// FromValuesWithDefaults is FromValues with the calculator starting at
// defaults. Links encoded from the result omit q and len only when they
// match defaults, so they must be decoded with the same defaults.
func FromValuesWithDefaults(v url.Values, content *catalog.Content, defaults greenops.CalculatorInput) (*Session, error) {
	s, err := NewSessionWithDefaults(content, defaults)
	if err != nil {
		return nil, err
	}

	if raw := v.Get(ParamQueries); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, ParamQueries, raw)
		}
		if err = s.SetQueryCount(n); err != nil {
			return nil, err
		}
	}

	if raw := v.Get(ParamLength); raw != "" {
		tier, err := greenops.ParseLengthTier(raw)
		if err != nil {
			return nil, err
		}
		if err = s.SetLengthTier(tier); err != nil {
			return nil, err
		}
	}

	if raw := v.Get(ParamItem); raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, ParamItem, raw)
		}
		if err = s.SelectRank(rank); err != nil {
			return nil, err
		}
	}

	for _, raw := range v[ParamPledge] {
		key := catalog.PledgeKey(raw)
		if !catalog.IsPledgeKey(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPledge, raw)
		}
		// Repeated keys collapse to checked.
		s.pledges[key] = true
	}

	for _, raw := range v[ParamTip] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, ParamTip, raw)
		}
		if _, ok := content.TipByNumber(n); !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTip, n)
		}
		s.tips[n] = true
	}

	return s, nil
}

// Encode returns the query-string form of the session. Values equal to the
// session's starting defaults are omitted; reveal state is not encoded.
func (s *Session) Encode() url.Values {
	v := url.Values{}
	if s.input.QueryCount != s.base.QueryCount {
		v.Set(ParamQueries, strconv.Itoa(s.input.QueryCount))
	}
	if s.input.LengthTier != s.base.LengthTier {
		v.Set(ParamLength, strconv.Itoa(int(s.input.LengthTier)))
	}
	if s.selected != nil {
		v.Set(ParamItem, strconv.Itoa(s.selected.Rank))
	}
	for _, k := range s.pledges.Checked() {
		v.Add(ParamPledge, string(k))
	}
	for _, tip := range s.content.Tips {
		if s.tips[tip.Number] {
			v.Add(ParamTip, strconv.Itoa(tip.Number))
		}
	}
	return v
}

// Clone returns an independent copy of the session's interaction state with
// a fresh reveal board.
func (s *Session) Clone() *Session {
	out := NewSession(s.content)
	out.base = s.base
	out.input = s.input
	if s.selected != nil {
		sel := *s.selected
		out.selected = &sel
	}
	out.pledges = s.pledges.Clone()
	for k, v := range s.tips {
		out.tips[k] = v
	}
	return out
}

// With returns the query string of a copy of the session after apply has
// run on it. The HTML page uses it to build links for each interaction.
func (s *Session) With(apply func(*Session)) url.Values {
	c := s.Clone()
	apply(c)
	return c.Encode()
}
