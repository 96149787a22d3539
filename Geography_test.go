package go_jetfuelburn_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

func TestLookupAirport(t *testing.T) {
	a, err := go_jetfuelburn.LookupAirport("OMDB", go_jetfuelburn.ByICAO)
	if err != nil {
		t.Fatal(err)
	}
	if a.IATA != "DXB" || a.Name != "Dubai International Airport" || a.Country != "AE" {
		t.Errorf("Unexpected airport %s", a)
	}
	assertEqual(t, a.Latitude, 25.2528, 1e-9, "latitude")

	a, err = go_jetfuelburn.LookupAirport("jfk", go_jetfuelburn.ByIATA)
	if err != nil || a.ICAO != "KJFK" {
		t.Errorf("Lookup by IATA failed: %v %s", err, a)
	}
	a, err = go_jetfuelburn.LookupAirport("Zurich Airport", go_jetfuelburn.ByName)
	if err != nil || a.IATA != "ZRH" {
		t.Errorf("Lookup by name failed: %v %s", err, a)
	}

	if _, err = go_jetfuelburn.LookupAirport("ZZZ", go_jetfuelburn.ByIATA); err == nil {
		t.Errorf("Unknown airport must fail")
	}
	if _, err = go_jetfuelburn.LookupAirport("OMDB", "zipcode"); err == nil {
		t.Errorf("Unknown identifier type must fail")
	}
	if len(go_jetfuelburn.Airports()) == 0 {
		t.Errorf("Atlas must not be empty")
	}
}

func TestGreatCircleDistance(t *testing.T) {
	d, err := go_jetfuelburn.AirportDistance("LHR", "JFK")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, d.In(unit.DistanceKilometer), 5539.64, 0.01, "LHR-JFK")

	d, _ = go_jetfuelburn.AirportDistance("ZRH", "GVA")
	assertEqual(t, d.In(unit.DistanceKilometer), 230.28, 0.01, "ZRH-GVA")

	back, _ := go_jetfuelburn.AirportDistance("JFK", "LHR")
	forth, _ := go_jetfuelburn.AirportDistance("LHR", "JFK")
	assertEqual(t, back.SI(), forth.SI(), 1e-6, "symmetry")

	d, _ = go_jetfuelburn.GreatCircleDistance(10, 20, 10, 20)
	assertEqual(t, d.SI(), 0, 1e-9, "same point")

	_, err = go_jetfuelburn.GreatCircleDistance(91, 0, 0, 0)
	assertDomainError(t, err, "latitude above 90")

	assertEqual(t, go_jetfuelburn.EarthRadius().In(unit.DistanceKilometer), 6371, 1e-9, "earth radius")
	assertEqual(t, go_jetfuelburn.DefaultTaxiTime().In(unit.TimeMinute), 26, 1e-9, "taxi time")
}

func TestMidpoint(t *testing.T) {
	lhr, _ := go_jetfuelburn.LookupAirport("LHR", go_jetfuelburn.ByIATA)
	jfk, _ := go_jetfuelburn.LookupAirport("JFK", go_jetfuelburn.ByIATA)
	lat, lon, err := go_jetfuelburn.Midpoint(lhr, jfk)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, lat, 52.2150, 1e-3, "midpoint latitude")
	assertEqual(t, lon, -41.3071, 1e-3, "midpoint longitude")

	d1, _ := go_jetfuelburn.GreatCircleDistance(lhr.Latitude, lhr.Longitude, lat, lon)
	d2, _ := go_jetfuelburn.GreatCircleDistance(lat, lon, jfk.Latitude, jfk.Longitude)
	assertRelative(t, d1.SI(), d2.SI(), 1e-9, "midpoint is halfway")

	_, _, err = go_jetfuelburn.Midpoint(go_jetfuelburn.Airport{Latitude: 0, Longitude: 0},
		go_jetfuelburn.Airport{Latitude: 0, Longitude: 180})
	assertDomainError(t, err, "antipodal airports")
}
