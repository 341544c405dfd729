package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embeddedContent []byte

// Impact score bounds.
const (
	MinImpactScore = 0
	MaxImpactScore = 100
)

//nolint:gochecknoglobals // Parsed once from the embedded resource.
var (
	defaultOnce    sync.Once
	defaultContent *Content
)

// Default returns the embedded page content. It is parsed on first use and
// shared afterwards; treat it as read-only.
func Default() *Content {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedContent)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded content is invalid: %v", err))
		}
		defaultContent = c
	})
	return defaultContent
}

// All returns the embedded usage categories ordered by rank.
func All() []UsageCategory {
	return Default().All()
}

// ByRank returns the embedded usage category with the given rank.
func ByRank(rank int) (UsageCategory, bool) {
	return Default().ByRank(rank)
}

// Parse decodes and validates content YAML. Categories are sorted by rank.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	sort.SliceStable(c.Categories, func(i, j int) bool {
		return c.Categories[i].Rank < c.Categories[j].Rank
	})

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the content invariants: ranks form the dense sequence 1..N,
// impact scores are within bounds, tips are numbered 1..N, pledge keys are
// exactly the fixed set and resource URLs are absolute.
func (c *Content) Validate() error {
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}

	for i, cat := range c.Categories {
		if cat.Rank != i+1 {
			return fmt.Errorf("%w: position %d has rank %d", ErrRankSequence, i+1, cat.Rank)
		}
		if cat.Title == "" {
			return fmt.Errorf("%w: rank %d", ErrMissingTitle, cat.Rank)
		}
		if cat.ImpactScore < MinImpactScore || cat.ImpactScore > MaxImpactScore {
			return fmt.Errorf("%w: rank %d has %d", ErrImpactOutOfRange, cat.Rank, cat.ImpactScore)
		}
	}

	for i, tip := range c.Tips {
		if tip.Number != i+1 {
			return fmt.Errorf("%w: position %d has number %d", ErrTipSequence, i+1, tip.Number)
		}
	}

	if err := c.validatePledges(); err != nil {
		return err
	}

	for _, r := range c.Resources {
		u, err := url.Parse(r.URL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: %q", ErrInvalidResourceURL, r.URL)
		}
	}

	return nil
}

func (c *Content) validatePledges() error {
	if len(c.Pledges) != len(PledgeKeys) {
		return fmt.Errorf("%w: got %d pledges, want %d", ErrPledgeSet, len(c.Pledges), len(PledgeKeys))
	}
	seen := make(map[PledgeKey]bool, len(c.Pledges))
	for _, p := range c.Pledges {
		if !IsPledgeKey(p.Key) || seen[p.Key] {
			return fmt.Errorf("%w: unexpected key %q", ErrPledgeSet, p.Key)
		}
		seen[p.Key] = true
	}
	return nil
}

// All returns the usage categories ordered by rank. The slice is a fresh copy.
func (c *Content) All() []UsageCategory {
	out := make([]UsageCategory, len(c.Categories))
	for i, cat := range c.Categories {
		out[i] = cat.clone()
	}
	return out
}

// ByRank returns the category with the given rank.
func (c *Content) ByRank(rank int) (UsageCategory, bool) {
	// Ranks are dense, so the rank is the index plus one.
	if rank < 1 || rank > len(c.Categories) {
		return UsageCategory{}, false
	}
	return c.Categories[rank-1].clone(), true
}

// TipByNumber returns the tip with the given number.
func (c *Content) TipByNumber(number int) (Tip, bool) {
	if number < 1 || number > len(c.Tips) {
		return Tip{}, false
	}
	return c.Tips[number-1], true
}

// ComparisonRevealID identifies the i-th comparison tile in reveal scheduling.
func ComparisonRevealID(i int) string {
	return revealID("comparison", i)
}

// EnergyBarRevealID identifies the i-th energy bar in reveal scheduling.
func EnergyBarRevealID(i int) string {
	return revealID("energy", i)
}

func revealID(kind string, n int) string {
	return kind + "-" + strconv.Itoa(n)
}
