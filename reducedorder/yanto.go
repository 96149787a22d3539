package reducedorder

import (
	"strconv"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
)

//YantoCoefficients are the regression coefficients of one aircraft type
//
//	fuel [kg] = CR·R [km] + CP·PL [kg] + CC
type YantoCoefficients struct {
	Aircraft string
	CR       float64
	CP       float64
	CC       float64
}

//YantoModel is the linear regression model of Yanto and Liem (2017),
//fitted to fuel burn simulated with the Eurocontrol BADA model.
//
//See doi:10.2514/6.2017-3338
type YantoModel struct {
	records map[string]YantoCoefficients
}

func (m *YantoModel) Name() string {
	return "Yanto"
}

func (m *YantoModel) AvailableAircraft() []string {
	return bmath.SortedMapKeys(m.records)
}

func (m *YantoModel) Restrictions() string {
	return "The regression coefficients of different manufacturers are not comparable, " +
		"do not use the model to compare aircraft of different manufacturers."
}

func (m *YantoModel) load() error {
	m.records = make(map[string]YantoCoefficients)
	return resources.MungeCSV("yanto.csv", []string{"acft", "c_R", "c_P", "c_C"}, func(s []string) error {
		var c [3]float64
		for i := range c {
			v, err := strconv.ParseFloat(s[i+1], 64)
			if err != nil {
				return err
			}
			c[i] = v
		}
		m.records[s[0]] = YantoCoefficients{Aircraft: s[0], CR: c[0], CP: c[1], CC: c[2]}
		return nil
	})
}

//Coefficients returns the regression coefficients of the aircraft
func (m *YantoModel) Coefficients(acft string) (YantoCoefficients, error) {
	return lookup(m.Name(), m.records, acft)
}

//CalculateFuelConsumption returns the fuel burned by the aircraft (ICAO
//designator) flying the range R with the payload PL
func (m *YantoModel) CalculateFuelConsumption(acft string, R, PL unit.Quantity) (unit.Quantity, error) {
	const function = "Yanto"
	if err := checkNonNegative(function, "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	if err := checkNonNegative(function, "PL", PL, unit.Mass); err != nil {
		return unit.Quantity{}, err
	}
	c, err := m.Coefficients(acft)
	if err != nil {
		return unit.Quantity{}, err
	}
	fuel := c.CR*R.In(unit.DistanceKilometer) + c.CP*PL.In(unit.MassKilogram) + c.CC
	return unit.MustCreate(fuel, unit.MassKilogram), nil
}
