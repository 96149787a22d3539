package reducedorder

import (
	"maps"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//MyClimateStandardAircraft is the only aircraft identifier of MyClimateModel
const MyClimateStandardAircraft = "standard aircraft"

//Cabin classes of MyClimateModel.PerPassenger
const (
	CabinEconomy  = "economy"
	CabinBusiness = "business"
	CabinFirst    = "first"
)

//MyClimateHaul are the parameters of the short haul or the long haul standard aircraft
type MyClimateHaul struct {
	//A, B and C are the coefficients of the fuel polynomial a·x² + b·x + c, x in km, fuel in kg
	A, B, C float64
	//Seats is the average number of seats
	Seats float64
	//PassengerLoadFactor is the average share of the seats occupied
	PassengerLoadFactor float64
	//PassengerShare is the share of the fuel allocated to the passengers rather than to the freight
	PassengerShare float64
	//CabinWeight are the cabin class weighting factors
	CabinWeight map[string]float64
}

func (h MyClimateHaul) clone() MyClimateHaul {
	h.CabinWeight = maps.Clone(h.CabinWeight)
	return h
}

func (h MyClimateHaul) fuel(x float64) float64 {
	return h.A*x*x + h.B*x + h.C
}

//The myclimate flight emission calculator parameters (2019 edition)
var (
	myClimateShortHaul = MyClimateHaul{
		A: 0, B: 2.714, C: 1166.52,
		Seats: 158.44, PassengerLoadFactor: 0.77, PassengerShare: 0.951,
		CabinWeight: map[string]float64{CabinEconomy: 0.96, CabinBusiness: 1.26, CabinFirst: 2.40},
	}
	myClimateLongHaul = MyClimateHaul{
		A: 0.0001, B: 7.104, C: 5044.93,
		Seats: 280.21, PassengerLoadFactor: 0.82, PassengerShare: 0.741,
		CabinWeight: map[string]float64{CabinEconomy: 0.80, CabinBusiness: 1.54, CabinFirst: 2.40},
	}
)

//Distances separating the short haul, the transition and the long haul, km
const (
	cMyClimateShortHaulLimit float64 = 1500
	cMyClimateLongHaulLimit  float64 = 2500
	//added to the great-circle distance for routing and holding
	cMyClimateDetour float64 = 95
)

//MyClimateShortHaul returns a copy of the parameters of the short haul standard aircraft
func MyClimateShortHaul() MyClimateHaul {
	return myClimateShortHaul.clone()
}

//MyClimateLongHaul returns a copy of the parameters of the long haul standard aircraft
func MyClimateLongHaul() MyClimateHaul {
	return myClimateLongHaul.clone()
}

//MyClimateHaulLimits returns the longest short haul distance and the
//shortest long haul distance
func MyClimateHaulLimits() (unit.Quantity, unit.Quantity) {
	return unit.MustCreate(cMyClimateShortHaulLimit, unit.DistanceKilometer),
		unit.MustCreate(cMyClimateLongHaulLimit, unit.DistanceKilometer)
}

//MyClimateDetour returns the distance added to the great-circle distance
func MyClimateDetour() unit.Quantity {
	return unit.MustCreate(cMyClimateDetour, unit.DistanceKilometer)
}

//MyClimateModel is the average aircraft model of the myclimate flight
//emission calculator. Flights up to 1500 km use a short haul standard
//aircraft, flights beyond 2500 km a long haul one, and the results are
//interpolated linearly in between.
type MyClimateModel struct{}

func (m *MyClimateModel) Name() string {
	return "MyClimate"
}

func (m *MyClimateModel) AvailableAircraft() []string {
	return []string{MyClimateStandardAircraft}
}

func (m *MyClimateModel) Restrictions() string {
	return "The standard aircraft averages the global fleet and is not suitable for individual aircraft types."
}

//blend evaluates f for the haul of the distance, interpolating in the transition
func (m *MyClimateModel) blend(R unit.Quantity, f func(h MyClimateHaul, x float64) float64) float64 {
	d := R.In(unit.DistanceKilometer)
	x := d + cMyClimateDetour
	lo, hi := cMyClimateShortHaulLimit, cMyClimateLongHaulLimit
	switch {
	case d <= lo:
		return f(myClimateShortHaul, x)
	case d >= hi:
		return f(myClimateLongHaul, x)
	default:
		return bmath.Lerp((d-lo)/(hi-lo), f(myClimateShortHaul, x), f(myClimateLongHaul, x))
	}
}

//CalculateFuelConsumption returns the fuel burned by the standard aircraft
//flying the great-circle distance R
func (m *MyClimateModel) CalculateFuelConsumption(acft string, R unit.Quantity) (unit.Quantity, error) {
	if err := checkNonNegative("MyClimate", "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	if acft != MyClimateStandardAircraft {
		return unit.Quantity{}, &UnknownAircraftError{Model: m.Name(), Identifier: acft, Valid: m.AvailableAircraft()}
	}
	fuel := m.blend(R, func(h MyClimateHaul, x float64) float64 { return h.fuel(x) })
	return unit.MustCreate(fuel, unit.MassKilogram), nil
}

//PerPassenger returns the fuel allocated to one passenger of the cabin class
//flying the great-circle distance R
//
//	fuel / (seats·PLF) · passenger share · cabin weight
func (m *MyClimateModel) PerPassenger(R unit.Quantity, cabin string) (unit.Quantity, error) {
	const function = "MyClimate"
	if err := checkNonNegative(function, "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	if _, ok := myClimateShortHaul.CabinWeight[cabin]; !ok {
		return unit.Quantity{}, domainError(function, "cabin", "must be %s, %s or %s, got %q", CabinEconomy, CabinBusiness, CabinFirst, cabin)
	}
	fuel := m.blend(R, func(h MyClimateHaul, x float64) float64 {
		return h.fuel(x) / (h.Seats * h.PassengerLoadFactor) * h.PassengerShare * h.CabinWeight[cabin]
	})
	return unit.MustCreate(fuel, unit.MassKilogram), nil
}
