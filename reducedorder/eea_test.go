package reducedorder_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/reducedorder"
)

func nmi(v float64) unit.Quantity {
	return unit.MustCreate(v, unit.DistanceNauticalMile)
}

//The bundled tables are placeholders, the expected values check the LTO
//offset and the interpolation only
func TestEEA(t *testing.T) {
	for _, c := range []struct {
		name string
		R    unit.Quantity
		fuel float64
	}{
		{"standard distance", nmi(125), 1671.1},
		{"between standard distances", nmi(187.5), 2054.2},
		{"below the first standard distance", nmi(62.5), 802.3 + 434.4},
		{"zero range", nmi(0), 802.3},
		{"longest standard distance", nmi(2000), 11398.6},
		{"kilometers", unit.MustCreate(231.5, unit.DistanceKilometer), 1671.1},
	} {
		t.Run(c.name, func(t *testing.T) {
			fuel, err := reducedorder.EEA.CalculateFuelConsumption("A320", c.R)
			if err != nil {
				t.Fatal(err)
			}
			assertEqual(t, fuel.In(unit.MassKilogram), c.fuel, 1e-6, c.name)
		})
	}
}

func TestEEASegments(t *testing.T) {
	lto, ccd, err := reducedorder.EEA.CalculateFuelSegments("A320", nmi(250))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, lto.In(unit.MassKilogram), 802.3, 1e-9, "LTO")
	assertEqual(t, ccd.In(unit.MassKilogram), 1635.0, 1e-6, "CCD")
}

func TestEEAErrors(t *testing.T) {
	_, err := reducedorder.EEA.CalculateFuelConsumption("A320", nmi(2001))
	assertDomainError(t, err, "beyond the table")

	_, err = reducedorder.EEA.CalculateFuelConsumption("A320", nmi(-1))
	assertDomainError(t, err, "negative range")

	//long haul aircraft are tabulated further
	if _, err = reducedorder.EEA.CalculateFuelConsumption("B772", nmi(6500)); err != nil {
		t.Error(err)
	}
}

func TestEEARecordIsACopy(t *testing.T) {
	r, err := reducedorder.EEA.Record("A320")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Distances) != 8 || len(r.CCDFuel) != 8 {
		t.Fatalf("Unexpected table size %d/%d", len(r.Distances), len(r.CCDFuel))
	}
	assertEqual(t, r.MaxRange().In(unit.DistanceNauticalMile), 2000, 1e-9, "max range")
	r.CCDFuel[0] = 0
	r.Distances[0] = 1

	fuel, err := reducedorder.EEA.CalculateFuelConsumption("A320", nmi(125))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, fuel.In(unit.MassKilogram), 1671.1, 1e-6, "unchanged table")
}
