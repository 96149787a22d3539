package go_jetfuelburn_test

import (
	"errors"
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

func TestAllocationConservation(t *testing.T) {
	cabins := []go_jetfuelburn.CabinConfiguration{
		{
			Economy:  go_jetfuelburn.CabinClass{SizeFactor: 1, Seats: 154, LoadFactor: 0.9},
			Business: go_jetfuelburn.CabinClass{SizeFactor: 1.5, Seats: 24, LoadFactor: 0.5},
		},
		{
			Economy:        go_jetfuelburn.CabinClass{SizeFactor: 1, Seats: 250, LoadFactor: 0.82},
			PremiumEconomy: go_jetfuelburn.CabinClass{SizeFactor: 1.3, Seats: 28, LoadFactor: 0.75},
			Business:       go_jetfuelburn.CabinClass{SizeFactor: 3.2, Seats: 42, LoadFactor: 0.7},
			First:          go_jetfuelburn.CabinClass{SizeFactor: 5.8, Seats: 8, LoadFactor: 0.5},
		},
		{
			First: go_jetfuelburn.CabinClass{SizeFactor: 4, Seats: 12, LoadFactor: 1},
		},
	}
	fuel := unit.MustCreate(62.5, unit.MassMetricTon)
	for i, cabin := range cabins {
		a, err := go_jetfuelburn.AllocateByArea(fuel, cabin)
		if err != nil {
			t.Fatalf("cabin %d: %v", i, err)
		}
		assertRelative(t, a.Total().SI(), fuel.SI(), 1e-12, "conservation")
		for j, v := range a.Values() {
			if v.Sign() < 0 {
				t.Errorf("cabin %d class %d: negative allocation %s", i, j, v)
			}
		}
	}
}

func TestAllocationLargerSeatsPayMore(t *testing.T) {
	a, err := go_jetfuelburn.AllocateByArea(unit.MustCreate(10000, unit.MassKilogram), go_jetfuelburn.CabinConfiguration{
		Economy:  go_jetfuelburn.CabinClass{SizeFactor: 1, Seats: 100, LoadFactor: 0.8},
		Business: go_jetfuelburn.CabinClass{SizeFactor: 2, Seats: 20, LoadFactor: 0.8},
	})
	if err != nil {
		t.Fatal(err)
	}
	assertRelative(t, a.Business().SI(), 2*a.Economy().SI(), 1e-12, "business seat is twice the economy seat")
	totals := a.ClassTotals()
	assertRelative(t, totals[0].SI(), 10000*100.0/140, 1e-12, "economy total")
}

func TestAllocationDegenerate(t *testing.T) {
	_, err := go_jetfuelburn.AllocateByArea(unit.MustCreate(10000, unit.MassKilogram), go_jetfuelburn.CabinConfiguration{})
	if !errors.Is(err, go_jetfuelburn.ErrDegenerateAllocation) || !errors.Is(err, go_jetfuelburn.ErrDomain) {
		t.Errorf("Cabin without seats must fail, got %v", err)
	}
}

func TestAllocationValidation(t *testing.T) {
	valid := go_jetfuelburn.CabinClass{SizeFactor: 1, Seats: 100, LoadFactor: 0.8}
	fuel := unit.MustCreate(10000, unit.MassKilogram)

	_, err := go_jetfuelburn.AllocateByArea(unit.MustCreate(10000, unit.DistanceKilometer), go_jetfuelburn.CabinConfiguration{Economy: valid})
	assertDimensionError(t, err, "fuel_per_flight")
	_, err = go_jetfuelburn.AllocateByArea(fuel.Neg(), go_jetfuelburn.CabinConfiguration{Economy: valid})
	assertDomainError(t, err, "negative fuel")
	_, err = go_jetfuelburn.AllocateByArea(fuel, go_jetfuelburn.CabinConfiguration{Economy: valid,
		Business: go_jetfuelburn.CabinClass{SizeFactor: 2, Seats: 10, LoadFactor: 1.1}})
	assertDomainError(t, err, "load factor above one")
	_, err = go_jetfuelburn.AllocateByArea(fuel, go_jetfuelburn.CabinConfiguration{Economy: valid,
		Business: go_jetfuelburn.CabinClass{SizeFactor: 2, Seats: 10, LoadFactor: 0}})
	assertDomainError(t, err, "empty class with seats")
	_, err = go_jetfuelburn.AllocateByArea(fuel, go_jetfuelburn.CabinConfiguration{Economy: valid,
		Business: go_jetfuelburn.CabinClass{SizeFactor: 0, Seats: 10, LoadFactor: 0.5}})
	assertDomainError(t, err, "zero size factor")
	_, err = go_jetfuelburn.AllocateByArea(fuel, go_jetfuelburn.CabinConfiguration{Economy: valid,
		Business: go_jetfuelburn.CabinClass{SizeFactor: 2, Seats: -1, LoadFactor: 0.5}})
	assertDomainError(t, err, "negative seats")
}
