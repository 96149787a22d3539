package reducedorder

import (
	"fmt"

	"github.com/brunoga/deep"
	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
)

//EEARecord is the fuel table of one aircraft type
type EEARecord struct {
	Aircraft string
	//LTOFuel is the fuel of the landing and takeoff cycle below 3000 ft, kg
	LTOFuel float64
	//Distances are the standard mission distances, nmi
	Distances []float64
	//CCDFuel is the climb, cruise and descent fuel at each of the Distances, kg
	CCDFuel []float64
}

//MaxRange returns the longest standard distance tabulated for the aircraft
func (r EEARecord) MaxRange() unit.Quantity {
	return unit.MustCreate(r.Distances[len(r.Distances)-1], unit.DistanceNauticalMile)
}

//EEAModel is a tabulated fuel model in the form of the EMEP/EEA air
//pollutant emission inventory guidebook 2019, part 1.A.3.a Aviation, annex 1.
//
//The fuel of a mission is the LTO fuel plus the climb, cruise and descent
//fuel interpolated linearly between the standard distances. The bundled
//tables are illustrative placeholders, not the values of the guidebook.
type EEAModel struct {
	records map[string]EEARecord
}

func (m *EEAModel) Name() string {
	return "EEA"
}

func (m *EEAModel) AvailableAircraft() []string {
	return bmath.SortedMapKeys(m.records)
}

func (m *EEAModel) Restrictions() string {
	return "Missions longer than the longest standard distance of the aircraft are not tabulated and are rejected. " + placeholderNotice
}

func (m *EEAModel) load() error {
	var table struct {
		Distances []float64 `msgpack:"standard_distances_nmi"`
		Aircraft  map[string]struct {
			LTO float64   `msgpack:"lto_fuel_kg"`
			CCD []float64 `msgpack:"ccd_fuel_kg"`
		} `msgpack:"aircraft"`
	}
	if err := resources.DecodeMsgpack("eea.msgpack", &table); err != nil {
		return err
	}
	m.records = make(map[string]EEARecord, len(table.Aircraft))
	for acft, a := range table.Aircraft {
		if len(a.CCD) == 0 || len(a.CCD) > len(table.Distances) {
			return fmt.Errorf("%s: %d distances tabulated, %d expected at most", acft, len(a.CCD), len(table.Distances))
		}
		m.records[acft] = EEARecord{
			Aircraft:  acft,
			LTOFuel:   a.LTO,
			Distances: table.Distances[:len(a.CCD):len(a.CCD)],
			CCDFuel:   a.CCD,
		}
	}
	return nil
}

//Record returns a copy of the fuel table of the aircraft
func (m *EEAModel) Record(acft string) (EEARecord, error) {
	r, err := lookup(m.Name(), m.records, acft)
	if err != nil {
		return EEARecord{}, err
	}
	return deep.MustCopy(r), nil
}

//CalculateFuelSegments returns the LTO fuel and the climb, cruise and descent
//fuel of the aircraft (ICAO designator) flying the range R
func (m *EEAModel) CalculateFuelSegments(acft string, R unit.Quantity) (unit.Quantity, unit.Quantity, error) {
	const function = "EEA"
	if err := checkNonNegative(function, "R", R, unit.Length); err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	r, err := lookup(m.Name(), m.records, acft)
	if err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	if cmp, _ := R.Compare(r.MaxRange()); cmp > 0 {
		return unit.Quantity{}, unit.Quantity{}, domainError(function, "R", "must not exceed %s for %s, got %s", r.MaxRange(), acft, R)
	}
	xs := append([]float64{0}, r.Distances...)
	ys := append([]float64{0}, r.CCDFuel...)
	//the conversion round trip must not push the longest distance out of the table
	x := bmath.Clamp(R.In(unit.DistanceNauticalMile), 0, xs[len(xs)-1])
	ccd, err := go_jetfuelburn.Interpolate(x, xs, ys)
	if err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	return unit.MustCreate(r.LTOFuel, unit.MassKilogram), unit.MustCreate(ccd, unit.MassKilogram), nil
}

//CalculateFuelConsumption returns the fuel burned by the aircraft (ICAO
//designator) flying the range R, including the LTO cycle
func (m *EEAModel) CalculateFuelConsumption(acft string, R unit.Quantity) (unit.Quantity, error) {
	lto, ccd, err := m.CalculateFuelSegments(acft, R)
	if err != nil {
		return unit.Quantity{}, err
	}
	return lto.Add(ccd)
}
