package go_jetfuelburn

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
	"github.com/iancoleman/orderedmap"
)

//SegmentTakeoff is the name of the climb segment which must be present in every climb schedule
const SegmentTakeoff string = "takeoff"

//SegmentApproach is the name of the descent segment which must be present in every descent schedule
const SegmentApproach string = "approach"

const cDefaultTaxiTimeMin float64 = 26

//DefaultTaxiTime returns the taxi time of the ICAO reference landing and take-off cycle
func DefaultTaxiTime() unit.Quantity {
	return unit.MustCreate(cDefaultTaxiTimeMin, unit.TimeMinute)
}

var cFinalReserveTime = unit.MustCreate(30, unit.TimeMinute)

//FlightSegment is one climb or descent segment of a mission
//
//The fuel flow is either absolute (FuelFlowPerEngine) or relative to the
//takeoff fuel flow (RelativeFuelFlow). The absolute value is used when it
//is set.
type FlightSegment struct {
	Name              string
	Time              unit.Quantity
	FuelFlowPerEngine unit.Quantity
	RelativeFuelFlow  float64
}

//CombinedMission describes a mission flown from the origin to the destination
//with an optional diversion to an alternate airport
type CombinedMission struct {
	//Climb must contain the "takeoff" segment
	Climb []FlightSegment
	//Descent must contain the "approach" segment
	Descent     []FlightSegment
	CruiseRange unit.Quantity

	//AlternateClimb and AlternateDescent are both empty when no alternate is planned
	AlternateClimb       []FlightSegment
	AlternateDescent     []FlightSegment
	AlternateCruiseRange unit.Quantity

	Payload         unit.Quantity
	OEW             unit.Quantity
	NumberOfEngines int
	FuelFlowIdle    unit.Quantity
	FuelFlowTakeoff unit.Quantity
	//TaxiTime is DefaultTaxiTime when not set
	TaxiTime    unit.Quantity
	CruiseSpeed unit.Quantity
	TSFC        unit.Quantity
	LiftToDrag  float64
}

//CombinedResult is the fuel mass required for each phase of a mission
type CombinedResult struct {
	Taxi         unit.Quantity
	Takeoff      unit.Quantity
	Climb        unit.Quantity
	Cruise       unit.Quantity
	Descent      unit.Quantity
	Approach     unit.Quantity
	Alternate    unit.Quantity
	FinalReserve unit.Quantity
}

//Total returns the block fuel including the alternate and the final reserve
func (r CombinedResult) Total() unit.Quantity {
	var total float64
	for _, q := range []unit.Quantity{r.Taxi, r.Takeoff, r.Climb, r.Cruise, r.Descent, r.Approach, r.Alternate, r.FinalReserve} {
		total += q.SI()
	}
	return unit.MustCreate(total, unit.MassKilogram)
}

//TripFuel returns the fuel burned from the origin to the destination
func (r CombinedResult) TripFuel() unit.Quantity {
	total := r.Taxi.SI() + r.Takeoff.SI() + r.Climb.SI() + r.Cruise.SI() + r.Descent.SI() + r.Approach.SI()
	return unit.MustCreate(total, unit.MassKilogram)
}

func (r CombinedResult) String() string {
	return fmt.Sprintf("Taxi: %s, Takeoff: %s, Climb: %s, Cruise: %s, Descent: %s, Approach: %s, Alternate: %s, Reserve: %s",
		r.Taxi, r.Takeoff, r.Climb, r.Cruise, r.Descent, r.Approach, r.Alternate, r.FinalReserve)
}

//ICAOLandingTakeoffCycle returns the climb and descent schedules of the
//ICAO reference landing and take-off cycle (Annex 16, Volume II)
//
//Takeoff is 0.7 minutes at 100% thrust, climb is 2.2 minutes at 85% thrust,
//approach is 4 minutes at 30% thrust. The taxi phase is covered by DefaultTaxiTime.
func ICAOLandingTakeoffCycle() (climb []FlightSegment, descent []FlightSegment) {
	climb = []FlightSegment{
		{Name: SegmentTakeoff, Time: unit.MustCreate(0.7, unit.TimeMinute), RelativeFuelFlow: 1},
		{Name: "climb", Time: unit.MustCreate(2.2, unit.TimeMinute), RelativeFuelFlow: 0.85},
	}
	descent = []FlightSegment{
		{Name: SegmentApproach, Time: unit.MustCreate(4, unit.TimeMinute), RelativeFuelFlow: 0.3},
	}
	return climb, descent
}

//CalculateCombined calculates the fuel required for the mission specified.
//
//Taxi, takeoff, climb, descent and approach fuel are fuel flow times duration
//times the number of engines. The cruise legs and the final reserve (30
//minutes at cruise speed on the zero fuel mass) use the Breguet range equation,
//each on the mass at the end of the leg. The descent fuel excludes the approach
//and any segment with "landing" in its name.
func CalculateCombined(mission CombinedMission) (CombinedResult, error) {
	if mission.TaxiTime.Dimension().Matches(unit.Dimensionless) && mission.TaxiTime.IsZero() {
		mission.TaxiTime = DefaultTaxiTime()
	}
	if mission.AlternateCruiseRange.Dimension().Matches(unit.Dimensionless) && mission.AlternateCruiseRange.IsZero() {
		mission.AlternateCruiseRange = unit.MustCreate(0, unit.DistanceKilometer)
	}
	err := unit.Require(
		unit.Expect("payload", mission.Payload, unit.Mass),
		unit.Expect("oew", mission.OEW, unit.Mass),
		unit.Expect("fuel_flow_per_engine_idle", mission.FuelFlowIdle, unit.MassFlow),
		unit.Expect("fuel_flow_per_engine_takeoff", mission.FuelFlowTakeoff, unit.MassFlow),
		unit.Expect("speed_cruise", mission.CruiseSpeed, unit.Velocity),
		unit.Expect("tsfc_cruise", mission.TSFC, unit.Tsfc),
		unit.Expect("R_cruise", mission.CruiseRange, unit.Length),
		unit.Expect("time_taxi", mission.TaxiTime, unit.Time),
		unit.Expect("R_cruise_alternate", mission.AlternateCruiseRange, unit.Length))
	if err != nil {
		return CombinedResult{}, err
	}
	if err = mission.validate(); err != nil {
		return CombinedResult{}, err
	}

	engines := float64(mission.NumberOfEngines)
	zfm := mission.OEW.SI() + mission.Payload.SI()
	taxi := mission.FuelFlowIdle.SI() * engines * mission.TaxiTime.SI()

	reserve, err := Breguet(mission.CruiseSpeed.Mul(cFinalReserveTime), mission.LiftToDrag,
		unit.MustCreate(zfm, unit.MassKilogram), mission.CruiseSpeed, mission.TSFC)
	if err != nil {
		return CombinedResult{}, err
	}

	var alternate float64
	if len(mission.AlternateClimb) > 0 {
		leg := mission.legFuel(mission.AlternateClimb, mission.AlternateDescent)
		cruise, err := Breguet(mission.AlternateCruiseRange, mission.LiftToDrag,
			unit.MustCreate(zfm+leg.descent+leg.approach+reserve.SI()+taxi/2, unit.MassKilogram),
			mission.CruiseSpeed, mission.TSFC)
		if err != nil {
			return CombinedResult{}, err
		}
		alternate = leg.takeoff + leg.climb + leg.descent + leg.approach + cruise.SI()
	}

	leg := mission.legFuel(mission.Climb, mission.Descent)
	cruise, err := Breguet(mission.CruiseRange, mission.LiftToDrag,
		unit.MustCreate(zfm+leg.descent+leg.approach+alternate+reserve.SI()+taxi/2, unit.MassKilogram),
		mission.CruiseSpeed, mission.TSFC)
	if err != nil {
		return CombinedResult{}, err
	}

	result := CombinedResult{
		Taxi:         unit.MustCreate(taxi, unit.MassKilogram),
		Takeoff:      unit.MustCreate(leg.takeoff, unit.MassKilogram),
		Climb:        unit.MustCreate(leg.climb, unit.MassKilogram),
		Cruise:       cruise,
		Descent:      unit.MustCreate(leg.descent, unit.MassKilogram),
		Approach:     unit.MustCreate(leg.approach, unit.MassKilogram),
		Alternate:    unit.MustCreate(alternate, unit.MassKilogram),
		FinalReserve: reserve,
	}
	log.Default().Debug("combined mission calculated", "total", result.Total().String())
	return result, nil
}

type legFuel struct {
	takeoff, climb, descent, approach float64
}

func (m CombinedMission) legFuel(climb, descent []FlightSegment) legFuel {
	var f legFuel
	for _, s := range climb {
		fuel := m.segmentFuel(s)
		if s.Name == SegmentTakeoff {
			f.takeoff += fuel
		} else {
			f.climb += fuel
		}
	}
	for _, s := range descent {
		fuel := m.segmentFuel(s)
		switch {
		case s.Name == SegmentApproach:
			f.approach += fuel
		case strings.Contains(strings.ToLower(s.Name), "landing"):
		default:
			f.descent += fuel
		}
	}
	return f
}

func (m CombinedMission) segmentFuel(s FlightSegment) float64 {
	flow := s.RelativeFuelFlow * m.FuelFlowTakeoff.SI()
	if !s.FuelFlowPerEngine.IsZero() {
		flow = s.FuelFlowPerEngine.SI()
	}
	return flow * s.Time.SI() * float64(m.NumberOfEngines)
}

func (m CombinedMission) validate() error {
	const function = "CalculateCombined"
	switch {
	case m.Payload.Sign() < 0:
		return domainError(function, "payload", "must not be negative, got %s", m.Payload)
	case m.OEW.Sign() <= 0:
		return domainError(function, "oew", "must be positive, got %s", m.OEW)
	case m.NumberOfEngines <= 0:
		return domainError(function, "number_of_engines", "must be positive, got %d", m.NumberOfEngines)
	case m.FuelFlowIdle.Sign() < 0:
		return domainError(function, "fuel_flow_per_engine_idle", "must not be negative, got %s", m.FuelFlowIdle)
	case m.FuelFlowTakeoff.Sign() < 0:
		return domainError(function, "fuel_flow_per_engine_takeoff", "must not be negative, got %s", m.FuelFlowTakeoff)
	case m.CruiseRange.Sign() < 0:
		return domainError(function, "R_cruise", "must not be negative, got %s", m.CruiseRange)
	case m.AlternateCruiseRange.Sign() < 0:
		return domainError(function, "R_cruise_alternate", "must not be negative, got %s", m.AlternateCruiseRange)
	case m.TaxiTime.Sign() < 0:
		return domainError(function, "time_taxi", "must not be negative, got %s", m.TaxiTime)
	}
	if err := checkSchedule("climb_segments", m.Climb, SegmentTakeoff, true); err != nil {
		return err
	}
	if err := checkSchedule("descent_segments", m.Descent, SegmentApproach, true); err != nil {
		return err
	}
	alternate := len(m.AlternateClimb) > 0 || len(m.AlternateDescent) > 0
	if err := checkSchedule("alternate_climb_segments", m.AlternateClimb, SegmentTakeoff, alternate); err != nil {
		return err
	}
	if err := checkSchedule("alternate_descent_segments", m.AlternateDescent, SegmentApproach, alternate); err != nil {
		return err
	}
	if !alternate && m.AlternateCruiseRange.Sign() > 0 {
		return domainError(function, "R_cruise_alternate", "requires alternate climb and descent segments")
	}
	return nil
}

func checkSchedule(parameter string, segments []FlightSegment, required string, mandatory bool) error {
	const function = "CalculateCombined"
	if !mandatory {
		return nil
	}
	if len(segments) == 0 {
		return domainError(function, parameter, "must not be empty")
	}
	found := false
	names := make(map[string]bool, len(segments))
	for _, s := range segments {
		if names[s.Name] {
			return domainError(function, parameter, "contains segment %q twice", s.Name)
		}
		names[s.Name] = true
		found = found || s.Name == required
		if err := s.Time.Check(parameter+"."+s.Name+".time", unit.Time); err != nil {
			return err
		}
		if s.Time.Sign() <= 0 {
			return domainError(function, parameter, "segment %q must have a positive time, got %s", s.Name, s.Time)
		}
		if s.FuelFlowPerEngine.IsZero() {
			if !(s.RelativeFuelFlow > 0) {
				return domainError(function, parameter, "segment %q must have a positive absolute or relative fuel flow", s.Name)
			}
			continue
		}
		if err := s.FuelFlowPerEngine.Check(parameter+"."+s.Name+".fuel_flow_per_engine", unit.MassFlow); err != nil {
			return err
		}
		if s.FuelFlowPerEngine.Sign() < 0 {
			return domainError(function, parameter, "segment %q must have a positive fuel flow, got %s", s.Name, s.FuelFlowPerEngine)
		}
	}
	if !found {
		return domainError(function, parameter, "must contain the %q segment", required)
	}
	return nil
}

type jsonQuantity struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

func (q *jsonQuantity) quantity() (unit.Quantity, error) {
	if q == nil {
		return unit.Quantity{}, nil
	}
	return unit.Create(q.Value, q.Units)
}

type jsonSegment struct {
	Time             *jsonQuantity `json:"time"`
	FuelFlow         *jsonQuantity `json:"fuel_flow_per_engine"`
	RelativeFuelFlow float64       `json:"fuel_flow_per_engine_relative_to_takeoff"`
}

//ParseSegments decodes a segment schedule from a JSON object keyed by the segment name
//
//	{"takeoff": {"time": {"value": 0.7, "units": "min"},
//	             "fuel_flow_per_engine": {"value": 0.205, "units": "kg/s"}},
//	 "climb_to_10000ft": {"time": {"value": 4, "units": "min"},
//	             "fuel_flow_per_engine_relative_to_takeoff": 0.85}}
//
//The segments are returned in the order of the keys in the document.
func ParseSegments(data []byte) ([]FlightSegment, error) {
	order := orderedmap.New()
	if err := json.Unmarshal(data, order); err != nil {
		return nil, fmt.Errorf("ParseSegments: %w", err)
	}
	var decoded map[string]jsonSegment
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("ParseSegments: %w", err)
	}

	segments := make([]FlightSegment, 0, len(decoded))
	for _, name := range order.Keys() {
		s := decoded[name]
		if s.Time == nil {
			return nil, fmt.Errorf("ParseSegments: segment %q has no time", name)
		}
		t, err := s.Time.quantity()
		if err != nil {
			return nil, fmt.Errorf("ParseSegments: segment %q: %w", name, err)
		}
		flow, err := s.FuelFlow.quantity()
		if err != nil {
			return nil, fmt.Errorf("ParseSegments: segment %q: %w", name, err)
		}
		segments = append(segments, FlightSegment{Name: name, Time: t, FuelFlowPerEngine: flow, RelativeFuelFlow: s.RelativeFuelFlow})
	}
	return segments, nil
}
