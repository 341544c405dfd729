package greenops

// Calculator figures. These are the literal approximations used by the
// page copy ("~500g CO2 per 100 queries") and are kept as-is.
const (
	// GramsPerQuery is the CO2 estimate for one medium-length query.
	GramsPerQuery = 5

	// GramsPerMile is the CO2 emitted by a passenger car per mile driven.
	GramsPerMile = 250.0

	// GramsPerPhoneCharge is the CO2 emitted by one full smartphone charge.
	GramsPerPhoneCharge = 8.0
)

// Length tier multipliers.
const (
	ShortMultiplier  = 0.7
	MediumMultiplier = 1.0
	LongMultiplier   = 1.5
)

// Slider bounds and defaults.
const (
	// MinQueries is the lowest value of the queries-per-day slider.
	MinQueries = 1

	// MaxQueries is the highest value of the queries-per-day slider.
	MaxQueries = 100

	// DefaultQueries is the initial slider position.
	DefaultQueries = 10

	// DefaultLengthTier is the initial response length.
	DefaultLengthTier = LengthMedium
)

// milesPrecision is the number of decimal places shown for driving distance.
const milesPrecision = 1
