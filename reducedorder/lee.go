package reducedorder

import (
	"math"
	"strconv"

	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
)

//Reserve and maneuver fuel fractions, Section II D of Lee and Chatterji (2010)
const (
	cLeeReserveFraction  float64 = 0.08
	cLeeManeuverFraction float64 = 0.007
	cLeeGravity          float64 = 9.8067
)

//LeeCoefficients are the coefficients of the fuel increment polynomial of one aircraft type
//
//	f_inc = K1·h² + K2·h·V + K3·V² + K4·h + K5·V + K6
//
//with h in meters and V in m/s.
type LeeCoefficients struct {
	Aircraft string
	K        [6]float64
}

//LeeParameters are the aircraft and mission parameters of the Lee model.
//
//The weights are forces (e.g. newtons), as in the publication.
type LeeParameters struct {
	//WE is the operating empty weight
	WE unit.Quantity
	//WMPLD is the maximum payload weight
	WMPLD unit.Quantity
	//WMTO is the maximum takeoff weight
	WMTO unit.Quantity
	//WMF is the maximum fuel weight
	WMF unit.Quantity
	//S is the wing reference area
	S unit.Quantity
	//CD0 and CD2 are the coefficients of the drag polar C_D = CD0 + CD2·C_L²
	CD0 float64
	CD2 float64
	//C is the weight specific fuel consumption (1/s)
	C unit.Quantity
	//H is the cruise altitude
	H unit.Quantity
	//V is the cruise speed
	V unit.Quantity
	//D is the mission distance
	D unit.Quantity
}

//LeeModel is the closed form range equation model of Lee and Chatterji (2010)
//with a parabolic drag polar, a fuel increment polynomial for climb and descent
//and reserve fuel. The payload is traded for fuel along the payload/range
//diagram of the aircraft.
//
//See doi:10.2514/6.2010-9156
type LeeModel struct {
	records map[string]LeeCoefficients
}

func (m *LeeModel) Name() string {
	return "Lee"
}

func (m *LeeModel) AvailableAircraft() []string {
	return bmath.SortedMapKeys(m.records)
}

func (m *LeeModel) Restrictions() string {
	return "Weights are forces and the fuel consumption is weight specific (1/s), as published. " +
		"The fuel increment polynomials were fitted for cruise altitudes and speeds of the aircraft types listed."
}

func (m *LeeModel) load() error {
	m.records = make(map[string]LeeCoefficients)
	return resources.MungeCSV("lee.csv", []string{"acft", "k_1", "k_2", "k_3", "k_4", "k_5", "k_6"}, func(s []string) error {
		c := LeeCoefficients{Aircraft: s[0]}
		for i := range c.K {
			v, err := strconv.ParseFloat(s[i+1], 64)
			if err != nil {
				return err
			}
			c.K[i] = v
		}
		m.records[s[0]] = c
		return nil
	})
}

//Coefficients returns the fuel increment coefficients of the aircraft
func (m *LeeModel) Coefficients(acft string) (LeeCoefficients, error) {
	return lookup(m.Name(), m.records, acft)
}

//CalculateFuelConsumption returns the fuel mass and the payload mass of the
//aircraft (ICAO designator) flying the mission specified.
//
//When the payload is limited by the maximum payload the fuel follows from
//the takeoff weight of the mission. Otherwise the payload is limited by the
//maximum takeoff weight or by the maximum fuel weight. Forces are converted
//to masses with g = 9.8067 m/s².
func (m *LeeModel) CalculateFuelConsumption(acft string, p LeeParameters) (unit.Quantity, unit.Quantity, error) {
	const function = "Lee"
	err := unit.Require(
		unit.Expect("W_E", p.WE, unit.Force),
		unit.Expect("W_MPLD", p.WMPLD, unit.Force),
		unit.Expect("W_MTO", p.WMTO, unit.Force),
		unit.Expect("W_MF", p.WMF, unit.Force),
		unit.Expect("S", p.S, unit.Area),
		unit.Expect("c", p.C, unit.Frequency),
		unit.Expect("h", p.H, unit.Length),
		unit.Expect("V", p.V, unit.Velocity),
		unit.Expect("d", p.D, unit.Length))
	if err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	for _, q := range []struct {
		name  string
		value unit.Quantity
	}{{"W_E", p.WE}, {"W_MPLD", p.WMPLD}, {"W_MTO", p.WMTO}, {"W_MF", p.WMF}, {"S", p.S}, {"c", p.C}, {"V", p.V}} {
		if q.value.Sign() <= 0 {
			return unit.Quantity{}, unit.Quantity{}, domainError(function, q.name, "must be positive, got %s", q.value)
		}
	}
	if !(p.CD0 > 0) {
		return unit.Quantity{}, unit.Quantity{}, domainError(function, "C_D0", "must be positive, got %v", p.CD0)
	}
	if !(p.CD2 > 0) {
		return unit.Quantity{}, unit.Quantity{}, domainError(function, "C_D2", "must be positive, got %v", p.CD2)
	}
	if p.D.Sign() < 0 {
		return unit.Quantity{}, unit.Quantity{}, domainError(function, "d", "must not be negative, got %s", p.D)
	}
	k, err := m.Coefficients(acft)
	if err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}
	q, err := go_jetfuelburn.DynamicPressure(p.V, p.H)
	if err != nil {
		return unit.Quantity{}, unit.Quantity{}, err
	}

	h, v, d, c := p.H.SI(), p.V.SI(), p.D.SI(), p.C.SI()
	wE, wMPLD, wMTO, wMF := p.WE.SI(), p.WMPLD.SI(), p.WMTO.SI(), p.WMF.SI()

	fInc := k.K[0]*h*h + k.K[1]*h*v + k.K[2]*v*v + k.K[3]*h + k.K[4]*v + k.K[5]
	a1 := math.Sqrt(p.CD2/p.CD0) / (q.SI() * p.S.SI())
	a2 := c / v * math.Sqrt(p.CD2*p.CD0)
	if a2*d >= math.Pi/2 {
		return unit.Quantity{}, unit.Quantity{}, domainError(function, "d", "%s is beyond the range of the aircraft", p.D)
	}
	ad := math.Tan(a2 * d)
	a3 := fInc + cLeeManeuverFraction
	a4 := 1 + cLeeReserveFraction

	//maximum zero fuel weight which can be flown over d at the maximum takeoff weight
	wMZF := (-a1*a3*ad*wMTO*wMTO + (1-a3)*wMTO - ad/a1) / (a4 * (a1*ad*wMTO + 1))

	var wF, wPLD float64
	switch {
	case wE+wMPLD < wMZF:
		wPLD = wMPLD
		wZF := wE + wPLD
		wTO, ok := smallerRoot(a1*a3*ad, a1*a4*ad*wZF+a3-1, a4*wZF+ad/a1)
		if !ok {
			return unit.Quantity{}, unit.Quantity{}, domainError(function, "d", "%s cannot be flown with the maximum payload", p.D)
		}
		wF = wTO - wZF
	case wMTO-wMZF < wMF:
		wF = wMTO - wMZF
		wPLD = wMZF - wE
	default:
		s := a3 + a4
		qa := a1 * ad * s
		qb := 2*a1*ad*s*wE + a1*ad*(2*a3+a4)*wMF + s - 1
		qc := a1*ad*s*wE*wE + a1*ad*(2*a3+a4)*wE*wMF + a1*a3*ad*wMF*wMF + (s-1)*wE + (a3-1)*wMF + ad/a1
		disc := qb*qb - 4*qa*qc
		if disc < 0 {
			return unit.Quantity{}, unit.Quantity{}, domainError(function, "d", "%s is beyond the range of the aircraft", p.D)
		}
		wF = wMF
		wPLD = (-qb + math.Sqrt(disc)) / (2 * qa)
	}
	if wPLD < 0 {
		return unit.Quantity{}, unit.Quantity{}, domainError(function, "d", "%s is beyond the range of the aircraft", p.D)
	}
	return unit.MustCreate(wF/cLeeGravity, unit.MassKilogram), unit.MustCreate(wPLD/cLeeGravity, unit.MassKilogram), nil
}

//smallerRoot returns the smaller root of a·x² + b·x + c = 0
func smallerRoot(a, b, c float64) (float64, bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	if a == 0 {
		return -c / b, b != 0
	}
	//2c/(-b + sqrt(disc)) equals (-b - sqrt(disc))/2a without the cancellation for small a
	den := -b + math.Sqrt(disc)
	if den == 0 {
		return 0, false
	}
	return 2 * c / den, true
}
