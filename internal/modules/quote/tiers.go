package quote

// Range cutoffs and the serenade flat rate.
const (
	SerenadeMaxMiles  = 25.0
	SerenadeFlatRate  = 300
	MaxAutoQuoteMiles = 120.0

	kmToMiles = 0.621371
)

// Tier is a contiguous distance band with its own hourly rate and minimum
// bookable duration. Bands are inclusive on both ends and ordered by
// distance; a distance that lands between bands routes to contact.
type Tier struct {
	MinMiles float64
	MaxMiles float64
	Rate     int
	MinHours int
}

var tiers = []Tier{
	{MinMiles: 0, MaxMiles: 25, Rate: 350, MinHours: 1},
	{MinMiles: 26, MaxMiles: 50, Rate: 450, MinHours: 2},
	{MinMiles: 51, MaxMiles: 80, Rate: 550, MinHours: 2},
	{MinMiles: 81, MaxMiles: 120, Rate: 650, MinHours: 3},
}

func matchTier(miles float64) *Tier {
	for i := range tiers {
		if tiers[i].MinMiles <= miles && miles <= tiers[i].MaxMiles {
			return &tiers[i]
		}
	}
	return nil
}
