//Package reducedorder implements published reduced-order and statistical
//fuel consumption models of commercial aircraft.
//
//Every model owns an immutable table of aircraft records which is parsed
//once when the package is loaded. The records handed out by the models are
//copies and may be modified by the caller.
package reducedorder

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/gehtsoft-usa/go_jetfuelburn"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath"
	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
	"golang.org/x/sync/errgroup"
)

//Model is implemented by every fuel consumption model of the package
type Model interface {
	//Name returns the short name of the model
	Name() string
	//AvailableAircraft returns the sorted identifiers accepted by the model,
	//ICAO designators, size classes or aircraft type names
	AvailableAircraft() []string
	//Restrictions documents the conditions of use of the model
	Restrictions() string
}

//RangePayloadModel calculates the fuel burned by an aircraft for a mission range and a payload
type RangePayloadModel interface {
	Model
	CalculateFuelConsumption(acft string, R, PL unit.Quantity) (unit.Quantity, error)
}

//RangeModel calculates the fuel burned by an aircraft for a mission range
type RangeModel interface {
	Model
	CalculateFuelConsumption(acft string, R unit.Quantity) (unit.Quantity, error)
}

//UnknownAircraftError reports an identifier which is not in the table of a model
type UnknownAircraftError = go_jetfuelburn.UnknownAircraftError

//ErrUnknownAircraft is matched by every UnknownAircraftError using errors.Is
var ErrUnknownAircraft = go_jetfuelburn.ErrUnknownAircraft

//The models of the package
var (
	Yanto     = &YantoModel{}
	Lee       = &LeeModel{}
	Seymour   = &SeymourModel{}
	AIM2015   = &AIM2015Model{}
	EEA       = &EEAModel{}
	MyClimate = &MyClimateModel{}
	Montlaur  = &MontlaurModel{}
	USDOT     = &USDOTModel{}
)

//Models returns every model of the package
func Models() []Model {
	return []Model{Yanto, Lee, Seymour, AIM2015, EEA, MyClimate, Montlaur, USDOT}
}

type loader interface {
	Model
	load() error
}

func init() {
	var eg errgroup.Group
	for _, m := range []loader{Yanto, Lee, Seymour, AIM2015, EEA, USDOT} {
		m := m
		eg.Go(func() error {
			if err := m.load(); err != nil {
				return fmt.Errorf("%s: %w", m.Name(), err)
			}
			log.Default().Debug("model data loaded", "model", m.Name(), "aircraft", len(m.AvailableAircraft()))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		//The tables are embedded in the binary, a broken table is a broken build
		panic(spew.Sdump(err))
	}
}

//placeholderNotice is appended to the restrictions of the models whose
//bundled tables are not the published values
const placeholderNotice = "The bundled coefficients are illustrative placeholders in the published functional form, " +
	"not the values of the publication. Results check the form of the model only."

func lookup[T any](model string, records map[string]T, acft string) (T, error) {
	r, ok := records[acft]
	if !ok {
		var zero T
		return zero, &UnknownAircraftError{Model: model, Identifier: acft, Valid: bmath.SortedMapKeys(records)}
	}
	return r, nil
}

func domainError(function, parameter, format string, args ...any) error {
	return &go_jetfuelburn.DomainError{Function: function, Parameter: parameter, Reason: fmt.Sprintf(format, args...)}
}

func checkNonNegative(function, parameter string, q unit.Quantity, dimension unit.Dimension) error {
	if err := q.Check(parameter, dimension); err != nil {
		return err
	}
	if q.Sign() < 0 {
		return domainError(function, parameter, "must not be negative, got %s", q)
	}
	return nil
}
