package reducedorder

import (
	"strconv"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
)

const cAIM2015SegmentLengthKm float64 = 200

//AIM2015DefaultSegmentLength returns the length of the climb and of the
//descent of AIM2015Model.CalculateFuelConsumption
func AIM2015DefaultSegmentLength() unit.Quantity {
	return unit.MustCreate(cAIM2015SegmentLengthKm, unit.DistanceKilometer)
}

//AIM2015Segment are the coefficients of one flight segment
//
//	fuel [kg] = A + B·D [km] + C·D [km]·PL [kg]
type AIM2015Segment struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

func (s AIM2015Segment) fuel(d, pl float64) float64 {
	return s.A + s.B*d + s.C*d*pl
}

//AIM2015Class are the coefficients of one aircraft size class
type AIM2015Class struct {
	Class       int            `json:"class"`
	Description string         `json:"description"`
	Climb       AIM2015Segment `json:"climb"`
	Cruise      AIM2015Segment `json:"cruise"`
	Descent     AIM2015Segment `json:"descent"`
}

//AIM2015Fuel is the fuel burned in the segments of a mission
type AIM2015Fuel struct {
	Climb   unit.Quantity
	Cruise  unit.Quantity
	Descent unit.Quantity
}

//Total returns the fuel burned in all segments
func (f AIM2015Fuel) Total() unit.Quantity {
	t, _ := f.Climb.Add(f.Cruise)
	t, _ = t.Add(f.Descent)
	return t
}

//AIM2015Model is a segment model in the form of the aircraft performance
//module of the Aviation Integrated Model (Dray et al., 2019). Aircraft are
//grouped in nine size classes, the fuel of each segment is linear in the
//segment length and in the product of the length and the payload.
//
//The bundled coefficients are illustrative placeholders, not the values of
//the publication (doi:10.1016/j.tranpol.2019.04.013).
type AIM2015Model struct {
	records map[string]AIM2015Class
}

func (m *AIM2015Model) Name() string {
	return "AIM2015"
}

//AvailableAircraft returns the size classes "1" to "9"
func (m *AIM2015Model) AvailableAircraft() []string {
	return bmath.SortedMapKeys(m.records)
}

func (m *AIM2015Model) Restrictions() string {
	return "Size classes represent the average aircraft of the class, " +
		"the model does not distinguish aircraft types within a class. " + placeholderNotice
}

func (m *AIM2015Model) load() error {
	var table struct {
		Source  string         `json:"source"`
		Classes []AIM2015Class `json:"classes"`
	}
	if err := resources.DecodeJSON("aim2015.json", &table); err != nil {
		return err
	}
	m.records = make(map[string]AIM2015Class, len(table.Classes))
	for _, c := range table.Classes {
		m.records[strconv.Itoa(c.Class)] = c
	}
	return nil
}

//Class returns the coefficients of the size class
func (m *AIM2015Model) Class(class string) (AIM2015Class, error) {
	return lookup(m.Name(), m.records, class)
}

//Description returns the description of the size class
func (m *AIM2015Model) Description(class string) (string, error) {
	c, err := m.Class(class)
	return c.Description, err
}

//CalculateSegments returns the fuel burned in the climb, the cruise and the
//descent segments of a mission of the size class.
//
//A segment of zero length burns no fuel.
func (m *AIM2015Model) CalculateSegments(class string, dClimb, dCruise, dDescent, PL unit.Quantity) (AIM2015Fuel, error) {
	const function = "AIM2015"
	for _, p := range []struct {
		name  string
		value unit.Quantity
		dim   unit.Dimension
	}{{"D_climb", dClimb, unit.Length}, {"D_cruise", dCruise, unit.Length}, {"D_descent", dDescent, unit.Length}, {"PL", PL, unit.Mass}} {
		if err := checkNonNegative(function, p.name, p.value, p.dim); err != nil {
			return AIM2015Fuel{}, err
		}
	}
	c, err := m.Class(class)
	if err != nil {
		return AIM2015Fuel{}, err
	}
	pl := PL.In(unit.MassKilogram)
	segment := func(s AIM2015Segment, d unit.Quantity) unit.Quantity {
		if d.IsZero() {
			return unit.MustCreate(0, unit.MassKilogram)
		}
		return unit.MustCreate(s.fuel(d.In(unit.DistanceKilometer), pl), unit.MassKilogram)
	}
	return AIM2015Fuel{
		Climb:   segment(c.Climb, dClimb),
		Cruise:  segment(c.Cruise, dCruise),
		Descent: segment(c.Descent, dDescent),
	}, nil
}

//CalculateFuelConsumption returns the fuel burned by an aircraft of the size
//class flying the range R with the payload PL.
//
//Climb and descent each cover AIM2015DefaultSegmentLength, or half of the
//range of shorter missions, and the cruise covers the rest.
func (m *AIM2015Model) CalculateFuelConsumption(class string, R, PL unit.Quantity) (unit.Quantity, error) {
	if err := checkNonNegative("AIM2015", "R", R, unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	half := R.Scale(0.5)
	d := AIM2015DefaultSegmentLength()
	if cmp, _ := half.Compare(d); cmp < 0 {
		d = half
	}
	cruise, _ := R.Sub(d.Scale(2))
	f, err := m.CalculateSegments(class, d, cruise, d, PL)
	if err != nil {
		return unit.Quantity{}, err
	}
	return f.Total(), nil
}
