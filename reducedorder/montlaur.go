package reducedorder

import (
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//MontlaurClass is one aircraft class of MontlaurModel with its domain of validity
type MontlaurClass struct {
	Name               string
	MinSeats, MaxSeats int
	MinRange, MaxRange unit.Quantity
	//gPerASK returns the fuel in g per available seat kilometer for the distance in km and the seats
	gPerASK func(d, s float64) float64
}

//Aircraft classes of MontlaurModel
const (
	MontlaurSmall = "small"
	MontlaurLarge = "large"
)

var montlaurClasses = map[string]MontlaurClass{
	MontlaurSmall: {
		Name: MontlaurSmall, MinSeats: 50, MaxSeats: 172,
		MinRange: unit.MustCreate(100, unit.DistanceKilometer), MaxRange: unit.MustCreate(5000, unit.DistanceKilometer),
		gPerASK: func(d, s float64) float64 {
			return 34.67 + 6608/d - 1.196e-3*d - 0.1354*s + 1.338e-5*d*s
		},
	},
	MontlaurLarge: {
		Name: MontlaurLarge, MinSeats: 172, MaxSeats: 365,
		MinRange: unit.MustCreate(200, unit.DistanceKilometer), MaxRange: unit.MustCreate(12000, unit.DistanceKilometer),
		gPerASK: func(d, s float64) float64 {
			return 0.7361 + 6651/d + 5.989e-4*d + 6.152e-2*s - 1.014e-6*d*s
		},
	},
}

//MontlaurModel is the fuel per available seat kilometer regression of
//Montlaur et al. for small (single aisle) and large (twin aisle) aircraft,
//as a function of the distance and the number of seats.
type MontlaurModel struct{}

func (m *MontlaurModel) Name() string {
	return "Montlaur"
}

func (m *MontlaurModel) AvailableAircraft() []string {
	return []string{MontlaurLarge, MontlaurSmall}
}

func (m *MontlaurModel) Restrictions() string {
	return "The regressions are valid for 50 to 172 seats and 100 to 5000 km (small) " +
		"and for 172 to 365 seats and 200 to 12000 km (large). Inputs outside these limits are rejected."
}

//Class returns the class and its domain of validity
func (m *MontlaurModel) Class(class string) (MontlaurClass, error) {
	return lookup(m.Name(), montlaurClasses, class)
}

//FuelPerASK returns the fuel per available seat kilometer, in g/km
func (m *MontlaurModel) FuelPerASK(class string, R unit.Quantity, seats int) (float64, error) {
	const function = "Montlaur"
	if err := R.Check("R", unit.Length); err != nil {
		return 0, err
	}
	c, err := m.Class(class)
	if err != nil {
		return 0, err
	}
	if seats < c.MinSeats || seats > c.MaxSeats {
		return 0, domainError(function, "seats", "must be within %d to %d for %s aircraft, got %d", c.MinSeats, c.MaxSeats, class, seats)
	}
	lo, _ := R.Compare(c.MinRange)
	hi, _ := R.Compare(c.MaxRange)
	if lo < 0 || hi > 0 {
		return 0, domainError(function, "R", "must be within %s to %s for %s aircraft, got %s", c.MinRange, c.MaxRange, class, R)
	}
	return c.gPerASK(R.In(unit.DistanceKilometer), float64(seats)), nil
}

//CalculateFuelConsumption returns the fuel burned by an aircraft of the class
//with the number of seats flying the distance R
func (m *MontlaurModel) CalculateFuelConsumption(class string, R unit.Quantity, seats int) (unit.Quantity, error) {
	g, err := m.FuelPerASK(class, R, seats)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(g*float64(seats)*R.In(unit.DistanceKilometer), unit.MassGram).MustConvert(unit.MassKilogram), nil
}
