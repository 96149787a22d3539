package go_jetfuelburn

import (
	"math"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

//DefaultLostFuelFraction is the share of the takeoff mass lost during
//takeoff and climb in the improved range equation
const DefaultLostFuelFraction float64 = 0.0152

//DefaultRecoveredFuelFraction is the share of the takeoff mass recovered
//during descent and approach in the improved range equation
const DefaultRecoveredFuelFraction float64 = 0.001

const cIntegrationPoints int = 257
const cRangeAccuracy float64 = 1e-9
const cMaxRangeIterations int = 200

//DragFunction returns the drag force of the aircraft, in newtons, for
//the weight (in newtons) specified
type DragFunction func(weight float64) float64

//Breguet calculates the fuel mass burned during a cruise of the range R
//using the Breguet range equation
//
//	m_f = m_after·(exp(R·g·TSFC/(V·L/D)) - 1)
//
//The equation assumes a cruise-climb at constant airspeed, constant lift
//coefficient and constant TSFC.
//
//ld is the lift-to-drag ratio (dimensionless), mAfterCruise is the aircraft mass
//at the end of the cruise, vCruise is the true airspeed and tsfcCruise is the
//thrust specific fuel consumption. The fuel is returned in kilograms.
func Breguet(R unit.Quantity, ld float64, mAfterCruise, vCruise, tsfcCruise unit.Quantity) (unit.Quantity, error) {
	err := unit.Require(
		unit.Expect("R", R, unit.Length),
		unit.Expect("m_after_cruise", mAfterCruise, unit.Mass),
		unit.Expect("v_cruise", vCruise, unit.Velocity),
		unit.Expect("TSFC_cruise", tsfcCruise, unit.Tsfc))
	if err != nil {
		return unit.Quantity{}, err
	}
	if err = checkCruise("Breguet", R, ld, mAfterCruise, vCruise, tsfcCruise); err != nil {
		return unit.Quantity{}, err
	}
	if R.IsZero() {
		return unit.MustCreate(0, unit.MassKilogram), nil
	}
	m := mAfterCruise.SI() * math.Expm1(R.SI()*unit.StandardGravity*tsfcCruise.SI()/(vCruise.SI()*ld))
	return unit.MustCreate(m, unit.MassKilogram), nil
}

//BreguetImproved calculates the fuel mass burned during a flight of the range R
//using the improved range equation of Randle et al. (2011), which accounts for
//the headwind and the fuel lost in climb and recovered in descent
//
//	H = L/D·V/(TSFC·g)
//	m_f = m_LDG·(1/(exp(-R/(H·(1-V_hw/V))) - lost + recovered) - 1)
//
//The lost and recovered fractions are shares of the takeoff mass, use
//DefaultLostFuelFraction and DefaultRecoveredFuelFraction unless better
//data are known. The headwind must be smaller than the airspeed, a tailwind
//is a negative headwind.
func BreguetImproved(R unit.Quantity, ld float64, mAfterCruise, v, vHeadwind, tsfc unit.Quantity, lost, recovered float64) (unit.Quantity, error) {
	err := unit.Require(
		unit.Expect("R", R, unit.Length),
		unit.Expect("m_after_cruise", mAfterCruise, unit.Mass),
		unit.Expect("V", v, unit.Velocity),
		unit.Expect("V_headwind", vHeadwind, unit.Velocity),
		unit.Expect("TSFC", tsfc, unit.Tsfc))
	if err != nil {
		return unit.Quantity{}, err
	}
	if err = checkCruise("BreguetImproved", R, ld, mAfterCruise, v, tsfc); err != nil {
		return unit.Quantity{}, err
	}
	if !(vHeadwind.SI() < v.SI()) || math.IsInf(vHeadwind.SI(), 0) {
		return unit.Quantity{}, domainError("BreguetImproved", "V_headwind", "must be smaller than the airspeed %s, got %s", v, vHeadwind)
	}
	if !(lost >= 0 && lost < 1) {
		return unit.Quantity{}, domainError("BreguetImproved", "lost_fuel_fraction", "must be within 0 to 1, got %v", lost)
	}
	if !(recovered >= 0 && recovered < 1) {
		return unit.Quantity{}, domainError("BreguetImproved", "recovered_fuel_fraction", "must be within 0 to 1, got %v", recovered)
	}
	if R.IsZero() {
		return unit.MustCreate(0, unit.MassKilogram), nil
	}

	h := ld * v.SI() / (tsfc.SI() * unit.StandardGravity)
	share := math.Exp(-R.SI()/(h*(1-vHeadwind.SI()/v.SI()))) - lost + recovered
	if share <= 0 {
		return unit.Quantity{}, domainError("BreguetImproved", "R", "%s is beyond the range of the aircraft", R)
	}
	return unit.MustCreate(mAfterCruise.SI()*(1/share-1), unit.MassKilogram), nil
}

//BreguetArctan calculates the fuel mass burned during a cruise of the range R
//flown at constant altitude and constant airspeed with a parabolic drag polar
//
//	R = V/(c·sqrt(a·b))·[atan(W1·sqrt(b/a)) - atan(W2·sqrt(b/a))]
//
//where a = q·S·C_D0, b = K/(q·S), c = TSFC·g and W1, W2 are the weights at the
//start and at the end of the cruise. Compressibility drag is ignored.
//
//A range that cannot be flown at this altitude and airspeed with any
//initial weight is a DomainError.
func BreguetArctan(R, mAfterCruise, v, tsfc, altitude unit.Quantity, polar DragPolar) (unit.Quantity, error) {
	err := unit.Require(
		unit.Expect("R", R, unit.Length),
		unit.Expect("m_after_cruise", mAfterCruise, unit.Mass),
		unit.Expect("V", v, unit.Velocity),
		unit.Expect("TSFC", tsfc, unit.Tsfc),
		unit.Expect("altitude", altitude, unit.Length))
	if err != nil {
		return unit.Quantity{}, err
	}
	if err = checkCruise("BreguetArctan", R, 1, mAfterCruise, v, tsfc); err != nil {
		return unit.Quantity{}, err
	}
	if err = polar.validate("BreguetArctan"); err != nil {
		return unit.Quantity{}, err
	}
	q, err := DynamicPressure(v, altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	if R.IsZero() {
		return unit.MustCreate(0, unit.MassKilogram), nil
	}

	qs := q.SI() * polar.WingArea.SI()
	a := qs * polar.CD0
	b := polar.K / qs
	c := tsfc.SI() * unit.StandardGravity
	k := math.Sqrt(b / a)
	w2 := mAfterCruise.SI() * unit.StandardGravity

	angle := R.SI()*c*math.Sqrt(a*b)/v.SI() + math.Atan(w2*k)
	if angle >= math.Pi/2 {
		return unit.Quantity{}, domainError("BreguetArctan", "R", "%s cannot be flown at %s and %s", R, altitude, v)
	}
	w1 := math.Tan(angle) / k
	return unit.MustCreate((w1-w2)/unit.StandardGravity, unit.MassKilogram), nil
}

//BreguetIntegrated calculates the fuel mass burned during a cruise of the range R
//by numerical integration of the specific air range
//
//	dR/dm = V/(TSFC·D(m·g))
//
//for a drag law without a closed form solution. The initial mass is found by
//bracketing and bisection, each candidate range is integrated with the
//trapezoidal rule.
func BreguetIntegrated(R, mAfterCruise, v, tsfc unit.Quantity, drag DragFunction) (unit.Quantity, error) {
	err := unit.Require(
		unit.Expect("R", R, unit.Length),
		unit.Expect("m_after_cruise", mAfterCruise, unit.Mass),
		unit.Expect("V", v, unit.Velocity),
		unit.Expect("TSFC", tsfc, unit.Tsfc))
	if err != nil {
		return unit.Quantity{}, err
	}
	if err = checkCruise("BreguetIntegrated", R, 1, mAfterCruise, v, tsfc); err != nil {
		return unit.Quantity{}, err
	}
	if drag == nil {
		return unit.Quantity{}, domainError("BreguetIntegrated", "drag", "must be specified")
	}
	if R.IsZero() {
		return unit.MustCreate(0, unit.MassKilogram), nil
	}

	target := R.SI()
	m2 := mAfterCruise.SI()
	xs := make([]float64, cIntegrationPoints)
	fs := make([]float64, cIntegrationPoints)

	var failed bool
	rangeFor := func(m1 float64) float64 {
		floats.Span(xs, m2, m1)
		for i, m := range xs {
			d := drag(m * unit.StandardGravity)
			if !(d > 0) || math.IsInf(d, 0) {
				failed = true
				return 0
			}
			fs[i] = v.SI() / (tsfc.SI() * d)
		}
		return integrate.Trapezoidal(xs, fs)
	}

	lo, hi := m2, m2*1.01
	var iterationsCount int
	for rangeFor(hi) < target {
		if failed {
			return unit.Quantity{}, domainError("BreguetIntegrated", "drag", "must be positive and finite")
		}
		lo = hi
		hi = m2 + (hi-m2)*2
		iterationsCount++
		if iterationsCount > cMaxRangeIterations/4 {
			return unit.Quantity{}, domainError("BreguetIntegrated", "R", "%s is beyond the range of the aircraft", R)
		}
	}
	if failed {
		return unit.Quantity{}, domainError("BreguetIntegrated", "drag", "must be positive and finite")
	}

	for iterationsCount = 0; (hi-lo) > cRangeAccuracy*m2 && iterationsCount < cMaxRangeIterations; iterationsCount++ {
		mid := (lo + hi) / 2
		if rangeFor(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	if failed {
		return unit.Quantity{}, domainError("BreguetIntegrated", "drag", "must be positive and finite")
	}
	log.Default().Debug("integrated range equation converged", "iterations", iterationsCount, "m_before_cruise", hi)
	return unit.MustCreate((lo+hi)/2-m2, unit.MassKilogram), nil
}

func checkCruise(function string, R unit.Quantity, ld float64, m, v, tsfc unit.Quantity) error {
	if !(R.SI() >= 0) || math.IsInf(R.SI(), 0) {
		return domainError(function, "R", "must be finite and not negative, got %s", R)
	}
	if !positiveFinite(ld) {
		return domainError(function, "LD", "must be positive and finite, got %v", ld)
	}
	if !positiveFinite(m.SI()) {
		return domainError(function, "m_after_cruise", "must be positive and finite, got %s", m)
	}
	if !positiveFinite(v.SI()) {
		return domainError(function, "V", "must be positive and finite, got %s", v)
	}
	if !positiveFinite(tsfc.SI()) {
		return domainError(function, "TSFC", "must be positive and finite, got %s", tsfc)
	}
	return nil
}

//positiveFinite is false for NaN too
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
