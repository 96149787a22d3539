package go_jetfuelburn_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

func createA350Diagram(t *testing.T) go_jetfuelburn.PayloadRangeDiagram {
	t.Helper()
	nmi := func(x float64) unit.Quantity { return unit.MustCreate(x, unit.DistanceNauticalMile) }
	ton := func(x float64) unit.Quantity { return unit.MustCreate(x, unit.MassMetricTon) }
	d, err := go_jetfuelburn.CreatePayloadRangeDiagram(ton(142.4), ton(280), nmi(500), ton(54), nmi(5830), ton(25), nmi(8575), nmi(9620))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPayloadRangeSegments(t *testing.T) {
	d := createA350Diagram(t)

	fuel, payload, err := d.At(unit.MustCreate(500, unit.DistanceNauticalMile))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, fuel.SI(), 0, 1e-9, "fuel at A")
	assertEqual(t, payload.In(unit.MassMetricTon), 54, 1e-9, "payload at A")

	fuel, payload, _ = d.At(unit.MustCreate(7000, unit.DistanceNauticalMile))
	assertEqual(t, payload.In(unit.MassKilogram), 54000-29000*1170.0/2745, 1e-6, "payload between B and C")
	assertEqual(t, fuel.In(unit.MassKilogram)+payload.In(unit.MassKilogram), 280000-142400, 1e-6, "MTOW between B and C")

	fuel, payload, _ = d.At(unit.MustCreate(9620, unit.DistanceNauticalMile))
	assertEqual(t, payload.SI(), 0, 1e-9, "payload at D")
	assertEqual(t, fuel.In(unit.MassKilogram), 280000-142400-25000, 1e-6, "fuel at D")
}

func TestPayloadRangeContinuity(t *testing.T) {
	d := createA350Diagram(t)
	for _, x := range []float64{5830, 8575} {
		eps := 1e-6
		f0, p0, _ := d.At(unit.MustCreate(x-eps, unit.DistanceNauticalMile))
		f1, p1, _ := d.At(unit.MustCreate(x, unit.DistanceNauticalMile))
		f2, p2, _ := d.At(unit.MustCreate(x+eps, unit.DistanceNauticalMile))
		assertEqual(t, p0.SI(), p1.SI(), 1e-3, "payload left of breakpoint")
		assertEqual(t, p2.SI(), p1.SI(), 1e-3, "payload right of breakpoint")
		assertEqual(t, f0.SI(), f1.SI(), 1e-3, "fuel left of breakpoint")
		assertEqual(t, f2.SI(), f1.SI(), 1e-3, "fuel right of breakpoint")
	}
}

func TestPayloadRangeEnvelope(t *testing.T) {
	d := createA350Diagram(t)
	_, _, err := d.At(unit.MustCreate(100, unit.DistanceNauticalMile))
	assertDomainError(t, err, "before A")
	_, _, err = d.At(unit.MustCreate(9621, unit.DistanceNauticalMile))
	assertDomainError(t, err, "beyond D")
	_, _, err = d.At(unit.MustCreate(-1, unit.DistanceKilometer))
	assertDomainError(t, err, "negative distance")
	_, _, err = d.At(unit.MustCreate(1, unit.MassKilogram))
	assertDimensionError(t, err, "d")

	assertEqual(t, d.MaximumRange().In(unit.DistanceNauticalMile), 9620, 1e-9, "maximum range")
}

func TestPayloadRangeValidation(t *testing.T) {
	nmi := func(x float64) unit.Quantity { return unit.MustCreate(x, unit.DistanceNauticalMile) }
	ton := func(x float64) unit.Quantity { return unit.MustCreate(x, unit.MassMetricTon) }

	_, err := go_jetfuelburn.CreatePayloadRangeDiagram(ton(142.4), ton(280), nmi(500), ton(54), nmi(400), ton(25), nmi(8575), nmi(9620))
	assertDomainError(t, err, "B before A")
	_, err = go_jetfuelburn.CreatePayloadRangeDiagram(ton(142.4), ton(280), nmi(500), ton(25), nmi(5830), ton(54), nmi(8575), nmi(9620))
	assertDomainError(t, err, "increasing payload")
	_, err = go_jetfuelburn.CreatePayloadRangeDiagram(ton(142.4), ton(190), nmi(500), ton(54), nmi(5830), ton(25), nmi(8575), nmi(9620))
	assertDomainError(t, err, "MTOW too small")
	_, err = go_jetfuelburn.CreatePayloadRangeDiagram(ton(142.4), nmi(280), nmi(500), ton(54), nmi(5830), ton(25), nmi(8575), nmi(9620))
	assertDimensionError(t, err, "mtow")
}
