package reducedorder

import (
	"strconv"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
)

//SeymourCoefficients are the coefficients of the fuel polynomial of one aircraft type
//
//	fuel [kg] = C0 + C1·R [km] + C2·R² [km²]
type SeymourCoefficients struct {
	Aircraft string
	C0       float64
	C1       float64
	C2       float64
	//MaxRange is the longest range of the missions the polynomial was fitted to
	MaxRange unit.Quantity
}

//SeymourModel is the quadratic range model in the form of Seymour et al. (2020).
//
//The bundled coefficients are illustrative placeholders, not the fits of the
//publication (doi:10.1016/j.trd.2020.102528).
type SeymourModel struct {
	records map[string]SeymourCoefficients
}

func (m *SeymourModel) Name() string {
	return "Seymour"
}

func (m *SeymourModel) AvailableAircraft() []string {
	return bmath.SortedMapKeys(m.records)
}

func (m *SeymourModel) Restrictions() string {
	return "The polynomials include the fuel for taxi, takeoff and landing at an average payload. " +
		"Ranges longer than the maximum range of the aircraft are extrapolated. " + placeholderNotice
}

func (m *SeymourModel) load() error {
	m.records = make(map[string]SeymourCoefficients)
	return resources.MungeCSV("seymour.csv", []string{"acft", "c_0", "c_1", "c_2", "max_range"}, func(s []string) error {
		var c [4]float64
		for i := range c {
			v, err := strconv.ParseFloat(s[i+1], 64)
			if err != nil {
				return err
			}
			c[i] = v
		}
		m.records[s[0]] = SeymourCoefficients{
			Aircraft: s[0],
			C0:       c[0],
			C1:       c[1],
			C2:       c[2],
			MaxRange: unit.MustCreate(c[3], unit.DistanceKilometer),
		}
		return nil
	})
}

//Coefficients returns the fuel polynomial of the aircraft
func (m *SeymourModel) Coefficients(acft string) (SeymourCoefficients, error) {
	return lookup(m.Name(), m.records, acft)
}

//CalculateFuelConsumption returns the fuel burned by the aircraft (ICAO
//designator) flying the range R.
//
//A range beyond the maximum range of the aircraft is calculated, but logged
//as a warning.
func (m *SeymourModel) CalculateFuelConsumption(acft string, R unit.Quantity) (unit.Quantity, error) {
	if err := checkNonNegative("Seymour", "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	c, err := m.Coefficients(acft)
	if err != nil {
		return unit.Quantity{}, err
	}
	if cmp, _ := R.Compare(c.MaxRange); cmp > 0 {
		log.Default().Warn("range exceeds the maximum range of the aircraft", "model", m.Name(), "aircraft", acft,
			"range", R.String(), "max_range", c.MaxRange.String())
	}
	r := R.In(unit.DistanceKilometer)
	return unit.MustCreate(c.C0+c.C1*r+c.C2*r*r, unit.MassKilogram), nil
}
