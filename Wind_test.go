package go_jetfuelburn_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

func deg(v float64) unit.Quantity {
	return unit.MustCreate(v, unit.AngularDegree)
}

func TestHeadwind(t *testing.T) {
	w := go_jetfuelburn.CreateOnlyWindInfo(unit.MustCreate(50, unit.VelocityKT), deg(270))[0]
	for _, c := range []struct {
		course   float64
		headwind float64
	}{
		{270, 50},
		{90, -50},
		{0, 0},
		{300, 43.30127},
	} {
		hw, err := w.Headwind(deg(c.course))
		if err != nil {
			t.Fatal(err)
		}
		assertEqual(t, hw.In(unit.VelocityKT), c.headwind, 1e-5, "headwind")
	}

	_, err := w.Headwind(unit.MustCreate(1, unit.DistanceKilometer))
	assertDimensionError(t, err, "course")
}

func TestAverageHeadwind(t *testing.T) {
	winds := []go_jetfuelburn.WindInfo{
		go_jetfuelburn.AddWindInfo(unit.MustCreate(1000, unit.DistanceKilometer), unit.MustCreate(20, unit.VelocityMPS), deg(0)),
		go_jetfuelburn.AddWindInfo(unit.MustCreate(3000, unit.DistanceKilometer), unit.MustCreate(40, unit.VelocityMPS), deg(180)),
	}
	hw, err := go_jetfuelburn.AverageHeadwind(winds, deg(0), unit.MustCreate(2000, unit.DistanceKilometer))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, hw.In(unit.VelocityMPS), -10, 1e-9, "half headwind half tailwind")

	//the last wind continues beyond its distance
	hw, err = go_jetfuelburn.AverageHeadwind(winds, deg(0), unit.MustCreate(5000, unit.DistanceKilometer))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, hw.In(unit.VelocityMPS), (20*1000-40*4000)/5000.0, 1e-9, "extended")

	hw, err = go_jetfuelburn.AverageHeadwind(go_jetfuelburn.CreateNoWind(), deg(0), unit.MustCreate(5000, unit.DistanceKilometer))
	if err != nil || !hw.IsZero() {
		t.Errorf("Calm route must have no headwind: %v %s", err, hw)
	}

	unordered := []go_jetfuelburn.WindInfo{winds[1], winds[0]}
	_, err = go_jetfuelburn.AverageHeadwind(unordered, deg(0), unit.MustCreate(5000, unit.DistanceKilometer))
	assertDomainError(t, err, "unordered winds")
}

func TestAverageHeadwindDerivedVelocity(t *testing.T) {
	v := unit.MustCreate(36, unit.DistanceKilometer).Div(unit.MustCreate(1, unit.TimeHour))
	hw, err := go_jetfuelburn.AverageHeadwind(go_jetfuelburn.CreateOnlyWindInfo(v, deg(0)), deg(0), unit.MustCreate(100, unit.DistanceKilometer))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, hw.In(unit.VelocityMPS), 10, 1e-9, "derived velocity")
	if hw.Units() != unit.VelocityMPS {
		t.Errorf("Expected m/s, got %s", hw.Units())
	}
}

func TestHeadwindInBreguet(t *testing.T) {
	lhr, _ := go_jetfuelburn.LookupAirport("LHR", go_jetfuelburn.ByIATA)
	jfk, _ := go_jetfuelburn.LookupAirport("JFK", go_jetfuelburn.ByIATA)
	course := go_jetfuelburn.InitialCourse(lhr, jfk)
	assertEqual(t, course.In(unit.AngularDegree), 287.93693, 1e-4, "LHR-JFK course")

	R, err := go_jetfuelburn.AirportDistance("LHR", "JFK")
	if err != nil {
		t.Fatal(err)
	}
	winds := go_jetfuelburn.CreateOnlyWindInfo(unit.MustCreate(60, unit.VelocityKT), deg(270))
	hw, err := go_jetfuelburn.AverageHeadwind(winds, course, R)
	if err != nil {
		t.Fatal(err)
	}
	if hw.Sign() <= 0 {
		t.Fatalf("Westbound flight must have a headwind, got %s", hw)
	}

	fuel := func(headwind unit.Quantity) float64 {
		f, err := go_jetfuelburn.BreguetImproved(R, 17,
			unit.MustCreate(180, unit.MassMetricTon), unit.MustCreate(250, unit.VelocityMPS), headwind,
			unit.MustCreate(16, unit.TsfcMgPerNs), go_jetfuelburn.DefaultLostFuelFraction, go_jetfuelburn.DefaultRecoveredFuelFraction)
		if err != nil {
			t.Fatal(err)
		}
		return f.In(unit.MassKilogram)
	}
	if calm, windy := fuel(unit.MustCreate(0, unit.VelocityMPS)), fuel(hw); windy <= calm {
		t.Errorf("Headwind must increase the fuel (%f/%f)", windy, calm)
	}
}
