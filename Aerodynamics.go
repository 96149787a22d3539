package go_jetfuelburn

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/internal/resources"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
)

//DragPolar is a parabolic drag polar of an aircraft in the clean configuration
//
//	C_D = C_D0 + K·C_L²
//
//CD0 (zero-lift drag coefficient) and K (induced drag factor) are dimensionless.
type DragPolar struct {
	Aircraft string
	WingArea unit.Quantity
	CD0      float64
	K        float64
}

var dragPolars = sync.OnceValues(func() (map[string]DragPolar, error) {
	polars := make(map[string]DragPolar)
	err := resources.MungeCSV("openap_drag.csv", []string{"acft", "wing_area_m2", "cd0", "k"},
		func(s []string) error {
			var v [3]float64
			for i := range v {
				x, err := strconv.ParseFloat(s[i+1], 64)
				if err != nil {
					return err
				}
				v[i] = x
			}
			polars[s[0]] = DragPolar{
				Aircraft: s[0],
				WingArea: unit.MustCreate(v[0], unit.AreaSquareMeter),
				CD0:      v[1],
				K:        v[2],
			}
			return nil
		})
	log.Default().Debug("drag polars loaded", "count", len(polars), "error", err)
	return polars, err
})

//DragPolarAircraft returns the sorted ICAO designators of the aircraft with a bundled drag polar
func DragPolarAircraft() []string {
	polars, err := dragPolars()
	if err != nil {
		return nil
	}
	return bmath.SortedMapKeys(polars)
}

//LookupDragPolar returns the bundled drag polar of the aircraft.
//
//The polars are illustrative low speed placeholders in the form published
//with the OpenAP aircraft performance model, not the OpenAP values. Wave
//drag is not included.
func LookupDragPolar(acft string) (DragPolar, error) {
	polars, err := dragPolars()
	if err != nil {
		return DragPolar{}, err
	}
	p, ok := polars[acft]
	if !ok {
		return DragPolar{}, &UnknownAircraftError{Model: "DragPolar", Identifier: acft, Valid: bmath.SortedMapKeys(polars)}
	}
	return p, nil
}

func (p DragPolar) validate(function string) error {
	if err := p.WingArea.Check("S", unit.Area); err != nil {
		return err
	}
	if p.WingArea.Sign() <= 0 {
		return domainError(function, "S", "must be positive, got %s", p.WingArea)
	}
	if !(p.CD0 > 0) {
		return domainError(function, "CD0", "must be positive, got %v", p.CD0)
	}
	if !(p.K > 0) {
		return domainError(function, "K", "must be positive, got %v", p.K)
	}
	return nil
}

//Drag returns the drag force for the lift force at the Mach number and
//the altitude specified
//
//	D = q·S·(C_D0 + K·C_L²), C_L = L/(q·S)
func (p DragPolar) Drag(lift unit.Quantity, mach float64, altitude unit.Quantity) (unit.Quantity, error) {
	qs, cl, err := p.liftCoefficient(lift, mach, altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(qs*(p.CD0+p.K*bmath.Sqr(cl)), unit.ForceNewton), nil
}

//LiftToDrag returns the lift-to-drag ratio for the lift force at the Mach
//number and the altitude specified
func (p DragPolar) LiftToDrag(lift unit.Quantity, mach float64, altitude unit.Quantity) (float64, error) {
	_, cl, err := p.liftCoefficient(lift, mach, altitude)
	if err != nil {
		return 0, err
	}
	return cl / (p.CD0 + p.K*bmath.Sqr(cl)), nil
}

//MaximumLiftToDrag returns the best lift-to-drag ratio of the polar, 1/(2·sqrt(C_D0·K))
func (p DragPolar) MaximumLiftToDrag() float64 {
	return 1 / (2 * math.Sqrt(p.CD0*p.K))
}

//DragFunction returns the drag as a function of the weight in level flight
//at the airspeed and the altitude specified, for use with BreguetIntegrated
func (p DragPolar) DragFunction(velocity, altitude unit.Quantity) (DragFunction, error) {
	if err := p.validate("DragFunction"); err != nil {
		return nil, err
	}
	q, err := DynamicPressure(velocity, altitude)
	if err != nil {
		return nil, err
	}
	qs := q.SI() * p.WingArea.SI()
	if !(qs > 0) {
		return nil, domainError("DragFunction", "velocity", "must be positive, got %s", velocity)
	}
	cd0, k := p.CD0, p.K
	return func(weight float64) float64 {
		cl := weight / qs
		return qs * (cd0 + k*cl*cl)
	}, nil
}

func (p DragPolar) liftCoefficient(lift unit.Quantity, mach float64, altitude unit.Quantity) (float64, float64, error) {
	if err := lift.Check("L", unit.Force); err != nil {
		return 0, 0, err
	}
	if err := p.validate("Drag"); err != nil {
		return 0, 0, err
	}
	if !(mach > 0) {
		return 0, 0, domainError("Drag", "M", "must be positive, got %v", mach)
	}
	if lift.Sign() <= 0 {
		return 0, 0, domainError("Drag", "L", "must be positive, got %s", lift)
	}
	v, err := AircraftVelocity(mach, altitude)
	if err != nil {
		return 0, 0, err
	}
	q, err := DynamicPressure(v, altitude)
	if err != nil {
		return 0, 0, err
	}
	qs := q.SI() * p.WingArea.SI()
	return qs, lift.SI() / qs, nil
}

func (p DragPolar) String() string {
	return fmt.Sprintf("%s:S=%s,CD0=%.4f,K=%.4f", p.Aircraft, p.WingArea, p.CD0, p.K)
}
