package catalog

// UsageCategory is one ranked real-world use of an AI assistant.
type UsageCategory struct {
	// Rank is the display position, unique and dense from 1.
	Rank int `yaml:"rank" json:"rank"`

	Title            string `yaml:"title" json:"title"`
	ShortDescription string `yaml:"short_description" json:"short_description"`

	// ImpactScore is a relative 0-100 score, not a physical quantity.
	ImpactScore int `yaml:"impact_score" json:"impact_score"`

	LongDescription string   `yaml:"long_description" json:"long_description"`
	Tips            []string `yaml:"tips" json:"tips"`
}

// RevealID identifies the card in reveal scheduling.
func (c UsageCategory) RevealID() string {
	return revealID("card", c.Rank)
}

// clone returns a deep copy so callers cannot mutate the catalog.
func (c UsageCategory) clone() UsageCategory {
	out := c
	out.Tips = append([]string(nil), c.Tips...)
	return out
}

// Tip is one "Using AI Mindfully" recommendation with optional examples.
type Tip struct {
	Number      int    `yaml:"number" json:"number"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	BadExample  string `yaml:"bad_example" json:"bad_example,omitempty"`
	GoodExample string `yaml:"good_example" json:"good_example,omitempty"`
}

// HasExamples reports whether the tip can be expanded.
func (t Tip) HasExamples() bool {
	return t.BadExample != "" || t.GoodExample != ""
}

// Resource is an external reading link. Links open in a new browsing context.
type Resource struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	URL         string `yaml:"url" json:"url"`
}

// Comparison is a "Putting It in Perspective" tile.
type Comparison struct {
	Label       string `yaml:"label" json:"label"`
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description" json:"description"`
}

// EnergyBar is one bar of the "Invisible Waste" chart.
type EnergyBar struct {
	Label      string `yaml:"label" json:"label"`
	Multiplier string `yaml:"multiplier" json:"multiplier"`

	// Value is the bar height in chart units (max 400).
	Value int `yaml:"value" json:"value"`

	// DelayMs staggers the bar's entrance after the chart's base delay.
	DelayMs int `yaml:"delay_ms" json:"delay_ms"`

	Highlight bool `yaml:"highlight" json:"highlight"`
}

// PledgeKey names one pledge checkbox.
type PledgeKey string

// The fixed pledge keys.
const (
	PledgeBatch    PledgeKey = "batch"
	PledgeSpecific PledgeKey = "specific"
	PledgeReuse    PledgeKey = "reuse"
	PledgeWorthIt  PledgeKey = "worthIt"
	PledgeComplex  PledgeKey = "complex"
)

// PledgeKeys lists the pledge keys in display order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var PledgeKeys = []PledgeKey{PledgeBatch, PledgeSpecific, PledgeReuse, PledgeWorthIt, PledgeComplex}

// IsPledgeKey reports whether k is one of the fixed pledge keys.
func IsPledgeKey(k PledgeKey) bool {
	for _, known := range PledgeKeys {
		if k == known {
			return true
		}
	}
	return false
}

// PledgeOption is a pledge checkbox label.
type PledgeOption struct {
	Key   PledgeKey `yaml:"key" json:"key"`
	Label string    `yaml:"label" json:"label"`
}

// Copy is the page's fixed prose. Fields documented as Markdown may contain
// inline emphasis.
type Copy struct {
	HeroTitle       string   `yaml:"hero_title"`
	HeroSubtitle    string   `yaml:"hero_subtitle"`
	ScrollHint      string   `yaml:"scroll_hint"`
	Intro           string   `yaml:"intro"`
	HeadlineFigure  string   `yaml:"headline_figure"`
	HeadlineCaption string   `yaml:"headline_caption"`
	HeadlineBody    string   `yaml:"headline_body"`
	WasteLead       string   `yaml:"waste_lead"`
	WasteBody       string   `yaml:"waste_body"`    // Markdown.
	WasteCallout    string   `yaml:"waste_callout"` // Markdown.
	WasteQuestion   string   `yaml:"waste_question"`
	WasteFootnote   string   `yaml:"waste_footnote"`
	ClosingTitle    string   `yaml:"closing_title"`
	ClosingBody     string   `yaml:"closing_body"` // Markdown.
	PledgeIntro     string   `yaml:"pledge_intro"`
	Headings        Headings `yaml:"headings"`
	Footer          []string `yaml:"footer"`
}

// Content is the complete page content.
type Content struct {
	Copy        Copy            `yaml:"copy"`
	Comparisons []Comparison    `yaml:"comparisons"`
	EnergyBars  []EnergyBar     `yaml:"energy_bars"`
	Categories  []UsageCategory `yaml:"categories"`
	Tips        []Tip           `yaml:"tips"`
	Resources   []Resource      `yaml:"resources"`
	Pledges     []PledgeOption  `yaml:"pledges"`
}

// Headings are the section titles and calculator labels.
type Headings struct {
	Perspective     string `yaml:"perspective"`
	Waste           string `yaml:"waste"`
	Calculator      string `yaml:"calculator"`
	QueriesLabel    string `yaml:"queries_label"`
	LengthLabel     string `yaml:"length_label"`
	CO2Caption      string `yaml:"co2_caption"`
	Usage           string `yaml:"usage"`
	Tips            string `yaml:"tips"`
	Resources       string `yaml:"resources"`
	Pledge          string `yaml:"pledge"`
	DetailsInvolves string `yaml:"details_involves"`
	DetailsImpact   string `yaml:"details_impact"`
	DetailsTips     string `yaml:"details_tips"`
}
