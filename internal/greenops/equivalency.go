package greenops

import (
	"fmt"
	"math"
)

// Estimate computes the derived metrics for one calculator position.
//
// The CO2 figure is queryCount × GramsPerQuery × multiplier, evaluated left to
// right and rounded half-up. Driving distance is the CO2 figure divided by
// GramsPerMile at one decimal place; phone charges are the CO2 figure divided
// by GramsPerPhoneCharge, rounded half-up.
//
// Input outside the calculator contract is returned as ErrQueryCountOutOfRange
// or ErrUnknownLengthTier without any clamping.
//
// Example:
//
//	est, err := Estimate(CalculatorInput{QueryCount: 10, LengthTier: LengthMedium})
//	// est.CO2Grams == 50, est.DrivingMiles == 0.2, est.PhoneCharges == 6
func Estimate(input CalculatorInput) (DerivedEstimate, error) {
	if err := input.Validate(); err != nil {
		return DerivedEstimate{}, err
	}

	co2 := int(roundHalfUp(float64(input.QueryCount*GramsPerQuery) * input.LengthTier.Multiplier()))
	miles := roundTo(float64(co2)/GramsPerMile, milesPrecision)
	phones := int(roundHalfUp(float64(co2) / GramsPerPhoneCharge))

	milesFormatted := FormatFloat(miles, milesPrecision)
	phonesFormatted := FormatNumber(int64(phones))

	results := []EquivalencyResult{
		{
			Type:           EquivalencyMilesDriven,
			Value:          miles,
			FormattedValue: milesFormatted,
			Label:          "miles driven",
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          float64(phones),
			FormattedValue: phonesFormatted,
			Label:          "smartphone charges",
		},
	}

	return DerivedEstimate{
		Input:        input,
		CO2Grams:     co2,
		DrivingMiles: miles,
		PhoneCharges: phones,
		Results:      results,
		DisplayText: fmt.Sprintf("That's like driving %s miles or charging your phone %s %s",
			milesFormatted, phonesFormatted, pluralize(phones, "time", "times")),
		CompactText: fmt.Sprintf("(≈ %s mi, %s charges)", milesFormatted, phonesFormatted),
	}, nil
}

// MustEstimate is like Estimate but panics on a contract violation. Callers
// must have clamped the input at the widget boundary.
func MustEstimate(input CalculatorInput) DerivedEstimate {
	est, err := Estimate(input)
	if err != nil {
		panic(fmt.Sprintf("greenops: %v", err))
	}
	return est
}

// ClampQueries bounds n to the slider range. It is meant for input widgets,
// never for the calculator itself.
func ClampQueries(n int) int {
	switch {
	case n < MinQueries:
		return MinQueries
	case n > MaxQueries:
		return MaxQueries
	default:
		return n
	}
}

// roundHalfUp rounds non-negative values to the nearest integer, ties up.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5) //nolint:mnd // Half-up rounding offset.
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, precision int) float64 {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	return math.Round(v*multiplier) / multiplier
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
