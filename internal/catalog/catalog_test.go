package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mindful/internal/catalog"
)

const expectedCategories = 11

func TestAll_DenseRanks(t *testing.T) {
	all := catalog.All()
	require.Len(t, all, expectedCategories)

	seen := make(map[int]bool)
	for i, cat := range all {
		assert.Equal(t, i+1, cat.Rank, "ranks must be in display order")
		assert.False(t, seen[cat.Rank], "duplicate rank %d", cat.Rank)
		seen[cat.Rank] = true
		assert.GreaterOrEqual(t, cat.ImpactScore, catalog.MinImpactScore)
		assert.LessOrEqual(t, cat.ImpactScore, catalog.MaxImpactScore)
		assert.NotEmpty(t, cat.Tips)
	}
}

func TestAll_Restartable(t *testing.T) {
	first := catalog.All()
	first[0].Title = "mutated"
	first[0].Tips[0] = "mutated"

	second := catalog.All()
	assert.Equal(t, "Writing & Editing", second[0].Title)
	assert.Equal(t, "Draft offline first, then refine with AI", second[0].Tips[0])
}

func TestByRank(t *testing.T) {
	cat, ok := catalog.ByRank(11)
	require.True(t, ok)
	assert.Equal(t, "Building Web Apps & Sites", cat.Title)
	assert.Equal(t, 95, cat.ImpactScore)
	assert.Len(t, cat.Tips, 4)

	_, ok = catalog.ByRank(0)
	assert.False(t, ok)
	_, ok = catalog.ByRank(expectedCategories + 1)
	assert.False(t, ok)
}

func TestDefault_SupplementaryContent(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, "The Weight of Intelligence", c.Copy.HeroTitle)
	assert.Len(t, c.Comparisons, 4)
	assert.Len(t, c.EnergyBars, 5)
	assert.Len(t, c.Tips, 8)
	assert.Len(t, c.Resources, 6)
	require.Len(t, c.Pledges, len(catalog.PledgeKeys))
	for i, p := range c.Pledges {
		assert.Equal(t, catalog.PledgeKeys[i], p.Key)
	}

	highlighted := 0
	for _, bar := range c.EnergyBars {
		if bar.Highlight {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)

	tip, ok := c.TipByNumber(5)
	require.True(t, ok)
	assert.Empty(t, tip.BadExample)
	assert.True(t, tip.HasExamples())
}

func TestParse_Validation(t *testing.T) {
	pledges := `
pledges:
  - {key: batch, label: a}
  - {key: specific, label: b}
  - {key: reuse, label: c}
  - {key: worthIt, label: d}
  - {key: complex, label: e}
`
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "no categories",
			yaml:    pledges,
			wantErr: catalog.ErrNoCategories,
		},
		{
			name: "gap in ranks",
			yaml: `
categories:
  - {rank: 1, title: a, impact_score: 10}
  - {rank: 3, title: b, impact_score: 10}
` + pledges,
			wantErr: catalog.ErrRankSequence,
		},
		{
			name: "duplicate rank",
			yaml: `
categories:
  - {rank: 1, title: a, impact_score: 10}
  - {rank: 1, title: b, impact_score: 10}
` + pledges,
			wantErr: catalog.ErrRankSequence,
		},
		{
			name: "impact above 100",
			yaml: `
categories:
  - {rank: 1, title: a, impact_score: 101}
` + pledges,
			wantErr: catalog.ErrImpactOutOfRange,
		},
		{
			name: "missing pledge",
			yaml: `
categories:
  - {rank: 1, title: a, impact_score: 1}
pledges:
  - {key: batch, label: a}
`,
			wantErr: catalog.ErrPledgeSet,
		},
		{
			name: "relative resource url",
			yaml: `
categories:
  - {rank: 1, title: a, impact_score: 1}
resources:
  - {title: x, url: /relative}
` + pledges,
			wantErr: catalog.ErrInvalidResourceURL,
		},
		{
			name: "unordered ranks are sorted",
			yaml: `
categories:
  - {rank: 2, title: b, impact_score: 1}
  - {rank: 1, title: a, impact_score: 1}
` + pledges,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Parse([]byte(tt.yaml))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			all := c.All()
			require.Len(t, all, 2)
			assert.Equal(t, "a", all[0].Title)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := catalog.Parse([]byte("categories: [unterminated"))
	require.Error(t, err)
}

func TestRevealIDs(t *testing.T) {
	cat, ok := catalog.ByRank(3)
	require.True(t, ok)
	assert.Equal(t, "card-3", cat.RevealID())
	assert.Equal(t, "comparison-0", catalog.ComparisonRevealID(0))
	assert.Equal(t, "energy-4", catalog.EnergyBarRevealID(4))
}

func TestIsPledgeKey(t *testing.T) {
	assert.True(t, catalog.IsPledgeKey(catalog.PledgeWorthIt))
	assert.False(t, catalog.IsPledgeKey("worthit"))
}
