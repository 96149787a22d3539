package reducedorder

import (
	"fmt"
	"strconv"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
)

//USDOTRecord are the yearly fleet averages of one aircraft type
type USDOTRecord struct {
	Aircraft string
	Year     int
	//PerSeat is the fuel per revenue seat and distance, kg/km
	PerSeat float64 `json:"Fuel/Revenue Seat Distance"`
	//PerWeight is the fuel per revenue weight and distance, 1/km
	PerWeight float64 `json:"Fuel/Revenue Weight Distance"`
}

//USDOTModel gives the average fuel consumption of the aircraft types
//operated by US carriers, from the US Department of Transportation Form 41
//schedules T-2 and P-5.2. Aircraft are identified by the US DOT type names.
//
//The bundled yearly averages are illustrative placeholders, not the values
//published by the Bureau of Transportation Statistics.
type USDOTModel struct {
	records map[int]map[string]USDOTRecord
}

func (m *USDOTModel) Name() string {
	return "USDOT"
}

//AvailableAircraft returns the aircraft types of all years
func (m *USDOTModel) AvailableAircraft() []string {
	all := make(map[string]struct{})
	for _, year := range m.records {
		for acft := range year {
			all[acft] = struct{}{}
		}
	}
	return bmath.SortedMapKeys(all)
}

func (m *USDOTModel) Restrictions() string {
	return "Fleet averages of US carriers for a calendar year, including the taxi, " +
		"holding and detours flown. Use the revenue distances of the operator. " + placeholderNotice
}

func (m *USDOTModel) load() error {
	var table map[string]map[string]USDOTRecord
	if err := resources.DecodeJSON("usdot.json", &table); err != nil {
		return err
	}
	m.records = make(map[int]map[string]USDOTRecord, len(table))
	for y, aircraft := range table {
		year, err := strconv.Atoi(y)
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", y, err)
		}
		m.records[year] = make(map[string]USDOTRecord, len(aircraft))
		for acft, r := range aircraft {
			r.Aircraft, r.Year = acft, year
			m.records[year][acft] = r
		}
	}
	return nil
}

//Years returns the years with data, in ascending order
func (m *USDOTModel) Years() []int {
	return bmath.SortedMapKeys(m.records)
}

func (m *USDOTModel) year(year int) (map[string]USDOTRecord, error) {
	y, ok := m.records[year]
	if !ok {
		return nil, domainError(m.Name(), "year", "no data for %d, available years are %v", year, m.Years())
	}
	return y, nil
}

//AircraftForYear returns the aircraft types with data for the year
func (m *USDOTModel) AircraftForYear(year int) ([]string, error) {
	y, err := m.year(year)
	if err != nil {
		return nil, err
	}
	return bmath.SortedMapKeys(y), nil
}

//Record returns the averages of the aircraft type in the year
func (m *USDOTModel) Record(year int, acft string) (USDOTRecord, error) {
	y, err := m.year(year)
	if err != nil {
		return USDOTRecord{}, err
	}
	r, err := lookup(m.Name(), y, acft)
	if err != nil {
		return USDOTRecord{}, err
	}
	return r, nil
}

//PerSeat returns the fuel burned per revenue seat by the aircraft type
//flying the distance R in the year
func (m *USDOTModel) PerSeat(year int, acft string, R unit.Quantity) (unit.Quantity, error) {
	if err := checkNonNegative(m.Name(), "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	r, err := m.Record(year, acft)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(r.PerSeat*R.In(unit.DistanceKilometer), unit.MassKilogram), nil
}

//PerWeight returns the fuel burned by the aircraft type flying the distance R
//with the revenue weight (payload) W in the year. The fuel is in the units of W.
func (m *USDOTModel) PerWeight(year int, acft string, R, W unit.Quantity) (unit.Quantity, error) {
	if err := checkNonNegative(m.Name(), "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	if err := checkNonNegative(m.Name(), "W", W, unit.Mass); err != nil {
		return unit.Quantity{}, err
	}
	r, err := m.Record(year, acft)
	if err != nil {
		return unit.Quantity{}, err
	}
	return W.Scale(r.PerWeight * R.In(unit.DistanceKilometer)), nil
}
