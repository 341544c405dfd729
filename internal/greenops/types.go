// Package greenops estimates the carbon cost of AI assistant usage.
//
// It maps a daily query count and an average response length onto grams of
// CO2 and converts that figure into relatable equivalents such as miles
// driven and smartphone charges. The figures are illustrative constants, not
// a physical model.
package greenops

import (
	"fmt"
	"strconv"
	"strings"
)

// LengthTier is the average response length selected on the calculator.
// The zero value is not a valid tier.
type LengthTier int

const (
	// LengthShort is a short answer (slider position 1).
	LengthShort LengthTier = iota + 1
	// LengthMedium is a medium answer (slider position 2).
	LengthMedium
	// LengthLong is a long answer (slider position 3).
	LengthLong
)

// LengthTiers lists the valid tiers in slider order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var LengthTiers = []LengthTier{LengthShort, LengthMedium, LengthLong}

// String returns the display label of the tier.
func (t LengthTier) String() string {
	switch t {
	case LengthShort:
		return "Short"
	case LengthMedium:
		return "Medium"
	case LengthLong:
		return "Long"
	default:
		return fmt.Sprintf("LengthTier(%d)", int(t))
	}
}

// Multiplier returns the energy multiplier applied to the base per-query
// figure. It returns 0 for an unknown tier.
func (t LengthTier) Multiplier() float64 {
	switch t {
	case LengthShort:
		return ShortMultiplier
	case LengthMedium:
		return MediumMultiplier
	case LengthLong:
		return LongMultiplier
	default:
		return 0
	}
}

// Valid reports whether t is one of the defined tiers.
func (t LengthTier) Valid() bool {
	return t >= LengthShort && t <= LengthLong
}

// MarshalText encodes the tier as its lower-case name.
func (t LengthTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrUnknownLengthTier
	}
	return []byte(strings.ToLower(t.String())), nil
}

// UnmarshalText decodes a tier name or slider position.
func (t *LengthTier) UnmarshalText(text []byte) error {
	parsed, err := ParseLengthTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseLengthTier parses a tier name ("short", "Medium", ...) or a slider
// position ("1".."3"). Matching is case-insensitive.
func ParseLengthTier(s string) (LengthTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "s":
		return LengthShort, nil
	case "medium", "m":
		return LengthMedium, nil
	case "long", "l":
		return LengthLong, nil
	}

	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if tier := LengthTier(n); tier.Valid() {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLengthTier, s)
}

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2 grams to miles driven in a car.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2 grams to full phone charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CalculatorInput is the state of the two calculator sliders.
type CalculatorInput struct {
	// QueryCount is the number of AI queries per day, in [MinQueries, MaxQueries].
	QueryCount int `json:"query_count"`

	// LengthTier is the average response length.
	LengthTier LengthTier `json:"length_tier"`
}

// DefaultInput returns the calculator position shown on first render.
func DefaultInput() CalculatorInput {
	return CalculatorInput{QueryCount: DefaultQueries, LengthTier: DefaultLengthTier}
}

// Validate reports whether the input is within the calculator contract.
func (in CalculatorInput) Validate() error {
	if in.QueryCount < MinQueries || in.QueryCount > MaxQueries {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrQueryCountOutOfRange, in.QueryCount, MinQueries, MaxQueries)
	}
	if !in.LengthTier.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLengthTier, int(in.LengthTier))
	}
	return nil
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	// Type identifies the equivalency category.
	Type EquivalencyType `json:"type"`

	// Value is the rounded equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "miles driven").
	Label string `json:"label"`
}

// DerivedEstimate is the calculator output. It is fully determined by the
// CalculatorInput it was computed from.
type DerivedEstimate struct {
	Input CalculatorInput `json:"input"`

	// CO2Grams is the estimated daily emission in grams.
	CO2Grams int `json:"co2_grams"`

	// DrivingMiles is the car distance with the same emission, one decimal place.
	DrivingMiles float64 `json:"driving_miles"`

	// PhoneCharges is the number of full smartphone charges with the same emission.
	PhoneCharges int `json:"phone_charges"`

	// Results contains the equivalencies in display order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose sentence shown under the figure.
	// Example: "That's like driving 0.2 miles or charging your phone 6 times"
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for table output.
	// Example: "(≈ 0.2 mi, 6 charges)"
	CompactText string `json:"compact_text"`
}
