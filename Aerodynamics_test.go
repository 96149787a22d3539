package go_jetfuelburn_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//The bundled polars are placeholders, the expected values check the
//parabolic polar form only
func TestDragPolar(t *testing.T) {
	polar, err := go_jetfuelburn.LookupDragPolar("A320")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, polar.WingArea.In(unit.AreaSquareMeter), 122.6, 1e-9, "wing area")
	assertEqual(t, polar.MaximumLiftToDrag(), 18.7278, 1e-4, "maximum L/D")

	lift := unit.MustCreate(65000, unit.MassKilogram).Mul(unit.MustCreate(unit.StandardGravity, unit.AccelerationMPS2))
	h := unit.MustCreate(10000, unit.DistanceMeter)
	drag, err := polar.Drag(lift, 0.78, h)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, drag.In(unit.ForceNewton), 36502.9, 0.5, "drag")

	ld, err := polar.LiftToDrag(lift, 0.78, h)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, ld, 17.4625, 1e-3, "L/D")
	if ld > polar.MaximumLiftToDrag() {
		t.Errorf("L/D must not exceed the maximum (%f)", ld)
	}

	_, err = polar.Drag(unit.MustCreate(65000, unit.MassKilogram), 0.78, h)
	assertDimensionError(t, err, "L")
	_, err = polar.Drag(lift, 0, h)
	assertDomainError(t, err, "zero Mach")
}

func TestDragPolarAircraft(t *testing.T) {
	acft := go_jetfuelburn.DragPolarAircraft()
	if len(acft) == 0 || !sort.StringsAreSorted(acft) {
		t.Errorf("Aircraft list must be sorted and not empty: %v", acft)
	}

	_, err := go_jetfuelburn.LookupDragPolar("B99")
	var ue *go_jetfuelburn.UnknownAircraftError
	if !errors.As(err, &ue) || !errors.Is(err, go_jetfuelburn.ErrUnknownAircraft) {
		t.Fatalf("Unknown aircraft must fail, got %v", err)
	}
	if len(ue.Valid) != len(acft) {
		t.Errorf("Error must list the valid aircraft")
	}
}
