package go_jetfuelburn

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//CabinClass describes one cabin class of a flight.
//
//SizeFactor is the floor area of a seat relative to an economy seat,
//LoadFactor is the share of the occupied seats (0 to 1). A class
//with zero seats is absent.
type CabinClass struct {
	SizeFactor float64
	Seats      int
	LoadFactor float64
}

//CabinConfiguration is the cabin layout of a flight
type CabinConfiguration struct {
	Economy        CabinClass
	PremiumEconomy CabinClass
	Business       CabinClass
	First          CabinClass
}

var cabinClassNames = [4]string{"economy", "premium economy", "business", "first"}

func (c CabinConfiguration) classes() [4]CabinClass {
	return [4]CabinClass{c.Economy, c.PremiumEconomy, c.Business, c.First}
}

//CabinAllocation is the fuel allocated to the passengers of each cabin class,
//in the order economy, premium economy, business, first
type CabinAllocation struct {
	perPassenger [4]unit.Quantity
	totals       [4]unit.Quantity
}

//Economy returns the fuel per economy class passenger
func (a CabinAllocation) Economy() unit.Quantity {
	return a.perPassenger[0]
}

//PremiumEconomy returns the fuel per premium economy class passenger
func (a CabinAllocation) PremiumEconomy() unit.Quantity {
	return a.perPassenger[1]
}

//Business returns the fuel per business class passenger
func (a CabinAllocation) Business() unit.Quantity {
	return a.perPassenger[2]
}

//First returns the fuel per first class passenger
func (a CabinAllocation) First() unit.Quantity {
	return a.perPassenger[3]
}

//Values returns the fuel per passenger of all four classes
func (a CabinAllocation) Values() [4]unit.Quantity {
	return a.perPassenger
}

//ClassTotals returns the fuel allocated to all passengers of each class.
//The totals add up to the fuel per flight.
func (a CabinAllocation) ClassTotals() [4]unit.Quantity {
	return a.totals
}

//Total returns the sum of the class totals
func (a CabinAllocation) Total() unit.Quantity {
	var s float64
	for _, t := range a.totals {
		s += t.SI()
	}
	return unit.MustCreate(s, unit.MassKilogram)
}

func (a CabinAllocation) String() string {
	return fmt.Sprintf("Economy:%s,PremiumEconomy:%s,Business:%s,First:%s",
		a.perPassenger[0], a.perPassenger[1], a.perPassenger[2], a.perPassenger[3])
}

//AllocateByArea allocates the fuel burned by a flight to the passengers
//of each cabin class according to the floor area their seats take
//
//	f_i = (1/L_i)·s_i·F / Σ s_j·S_j
//
//where F is the fuel per flight, s the size factor, S the number of seats and
//L the load factor. Empty seats are paid for by the passengers of the class.
//
//A cabin without seats is reported as ErrDegenerateAllocation.
func AllocateByArea(fuelPerFlight unit.Quantity, cabin CabinConfiguration) (CabinAllocation, error) {
	const function = "AllocateByArea"
	if err := fuelPerFlight.Check("fuel_per_flight", unit.Mass); err != nil {
		return CabinAllocation{}, err
	}
	if fuelPerFlight.Sign() <= 0 {
		return CabinAllocation{}, domainError(function, "fuel_per_flight", "must be positive, got %s", fuelPerFlight)
	}

	classes := cabin.classes()
	var area float64
	var seats int
	for i, c := range classes {
		name := cabinClassNames[i]
		switch {
		case c.Seats < 0:
			return CabinAllocation{}, domainError(function, "seats", "of %s class must not be negative, got %d", name, c.Seats)
		case !(c.LoadFactor >= 0 && c.LoadFactor <= 1):
			return CabinAllocation{}, domainError(function, "load_factor", "of %s class must be within 0 to 1, got %v", name, c.LoadFactor)
		case c.Seats > 0 && (!(c.SizeFactor > 0) || math.IsInf(c.SizeFactor, 0)):
			return CabinAllocation{}, domainError(function, "size_factor", "of %s class must be positive, got %v", name, c.SizeFactor)
		case c.Seats > 0 && c.LoadFactor == 0:
			return CabinAllocation{}, domainError(function, "load_factor", "of %s class must be positive when the class has seats", name)
		}
		seats += c.Seats
		if c.Seats > 0 {
			area += c.SizeFactor * float64(c.Seats)
		}
	}
	if seats == 0 {
		return CabinAllocation{}, ErrDegenerateAllocation
	}

	var a CabinAllocation
	fuel := fuelPerFlight.SI()
	for i, c := range classes {
		var perPassenger, total float64
		if c.Seats > 0 {
			perPassenger = c.SizeFactor * fuel / (c.LoadFactor * area)
			total = perPassenger * float64(c.Seats) * c.LoadFactor
		}
		a.perPassenger[i] = unit.MustCreate(perPassenger, unit.MassKilogram)
		a.totals[i] = unit.MustCreate(total, unit.MassKilogram)
	}
	return a, nil
}
