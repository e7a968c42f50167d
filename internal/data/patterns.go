package data

import "math/rand"

// ApplianceClass describes the statistical usage shape of one kind of
// flexible household appliance, distilled from survey data. Times are
// hours of day, durations are hours.
type ApplianceClass struct {
	Name string

	// Ownership is the probability a household owns one.
	Ownership float64
	// DailyUse is the probability of one usage event on a given day.
	DailyUse float64

	MinPowerKW float64
	MaxPowerKW float64

	MinDurationH float64
	MaxDurationH float64

	// Earliest permissible start falls uniformly in [EarliestHour, LatestHour].
	EarliestHour float64
	LatestHour   float64

	// The latest permissible start trails the earliest one by up to
	// FlexHours (uniform), bounded below by MinFlexHours.
	MinFlexHours float64
	FlexHours    float64
}

// Catalog is the built-in appliance survey. Ownership and usage rates
// approximate the residential statistics the archive demand was
// recorded against.
var Catalog = []ApplianceClass{
	{
		Name:      "ev_charger",
		Ownership: 0.45, DailyUse: 0.80,
		MinPowerKW: 3.6, MaxPowerKW: 11.0,
		MinDurationH: 1.0, MaxDurationH: 5.0,
		EarliestHour: 16.0, LatestHour: 22.0,
		MinFlexHours: 4.0, FlexHours: 10.0,
	},
	{
		Name:      "water_heater",
		Ownership: 0.60, DailyUse: 0.95,
		MinPowerKW: 1.8, MaxPowerKW: 3.0,
		MinDurationH: 0.5, MaxDurationH: 2.5,
		EarliestHour: 0.0, LatestHour: 18.0,
		MinFlexHours: 2.0, FlexHours: 6.0,
	},
	{
		Name:      "dishwasher",
		Ownership: 0.55, DailyUse: 0.65,
		MinPowerKW: 0.9, MaxPowerKW: 1.4,
		MinDurationH: 1.0, MaxDurationH: 2.0,
		EarliestHour: 18.0, LatestHour: 22.0,
		MinFlexHours: 4.0, FlexHours: 10.0,
	},
	{
		Name:      "washing_machine",
		Ownership: 0.90, DailyUse: 0.45,
		MinPowerKW: 0.5, MaxPowerKW: 1.2,
		MinDurationH: 1.0, MaxDurationH: 2.5,
		EarliestHour: 7.0, LatestHour: 20.0,
		MinFlexHours: 1.0, FlexHours: 5.0,
	},
	{
		Name:      "tumble_dryer",
		Ownership: 0.40, DailyUse: 0.35,
		MinPowerKW: 1.5, MaxPowerKW: 2.5,
		MinDurationH: 1.0, MaxDurationH: 2.0,
		EarliestHour: 8.0, LatestHour: 20.0,
		MinFlexHours: 1.0, FlexHours: 4.0,
	},
}

// surveyHouseholds is how many households the catalog statistics cover.
// Requests beyond this are a data gap, not something to extrapolate.
const surveyHouseholds = 1_000_000

// ApplianceTemplate is one household's sampled instance of a class:
// fixed rated power, plus a per-appliance seed so event generation is
// reproducible and independent across appliances.
type ApplianceTemplate struct {
	Class   ApplianceClass
	PowerKW float64
	Seed    int64
}

// HouseholdPatterns samples appliance template sets for count
// households. The same (count, seed) pair always yields the same
// templates.
func HouseholdPatterns(count int, seed int64) ([][]ApplianceTemplate, error) {
	if count <= 0 || count > surveyHouseholds {
		return nil, &DataGapError{What: "household usage pattern coverage"}
	}
	rng := rand.New(rand.NewSource(seed))
	households := make([][]ApplianceTemplate, count)
	for h := range households {
		var set []ApplianceTemplate
		for _, class := range Catalog {
			if rng.Float64() >= class.Ownership {
				continue
			}
			set = append(set, ApplianceTemplate{
				Class:   class,
				PowerKW: class.MinPowerKW + rng.Float64()*(class.MaxPowerKW-class.MinPowerKW),
				Seed:    rng.Int63(),
			})
		}
		households[h] = set
	}
	return households, nil
}

// ExpectedPeakKW is the catalog's expected simultaneous controllable
// draw per household, used to calibrate the price signal against the
// fleet size.
func ExpectedPeakKW() float64 {
	total := 0.0
	for _, c := range Catalog {
		total += c.Ownership * c.DailyUse * (c.MinPowerKW + c.MaxPowerKW) / 2
	}
	return total
}
