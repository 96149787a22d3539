package go_jetfuelburn

import (
	"math"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//WindInfo is the wind on a part of a route.
//
//The wind blows until the UntilDistance from the departure, the next
//WindInfo of the route takes over from there. Direction is the direction the
//wind blows from, clockwise from north.
type WindInfo struct {
	UntilDistance unit.Quantity
	Velocity      unit.Quantity
	Direction     unit.Quantity
}

//CreateNoWind returns a calm route
func CreateNoWind() []WindInfo {
	return nil
}

//CreateOnlyWindInfo returns a route with the same wind everywhere
func CreateOnlyWindInfo(velocity, direction unit.Quantity) []WindInfo {
	return []WindInfo{{
		UntilDistance: unit.MustCreate(math.Inf(1), unit.DistanceKilometer),
		Velocity:      velocity,
		Direction:     direction,
	}}
}

//AddWindInfo creates the wind of a part of the route ending at untilDistance
func AddWindInfo(untilDistance, velocity, direction unit.Quantity) WindInfo {
	return WindInfo{UntilDistance: untilDistance, Velocity: velocity, Direction: direction}
}

//Headwind returns the component of the wind against an aircraft flying the
//course (clockwise from north). A tailwind is a negative headwind.
func (w WindInfo) Headwind(course unit.Quantity) (unit.Quantity, error) {
	err := unit.Require(
		unit.Expect("wind_velocity", w.Velocity, unit.Velocity),
		unit.Expect("wind_direction", w.Direction, unit.Angle),
		unit.Expect("course", course, unit.Angle))
	if err != nil {
		return unit.Quantity{}, err
	}
	return w.Velocity.Scale(math.Cos(w.Direction.SI() - course.SI())), nil
}

//AverageHeadwind returns the distance weighted headwind over the first R of
//a route flown on a constant course. The winds must be ordered by their
//UntilDistance, the last wind continues to R. A calm route has no headwind.
func AverageHeadwind(winds []WindInfo, course, R unit.Quantity) (unit.Quantity, error) {
	const function = "AverageHeadwind"
	if err := R.Check("R", unit.Length); err != nil {
		return unit.Quantity{}, err
	}
	if R.Sign() < 0 {
		return unit.Quantity{}, domainError(function, "R", "must not be negative, got %s", R)
	}
	zero := unit.MustCreate(0, unit.VelocityMPS)
	if len(winds) == 0 || R.IsZero() {
		return zero, nil
	}

	r := R.SI()
	var sum, from float64
	for i, w := range winds {
		if err := w.UntilDistance.Check("until_distance", unit.Length); err != nil {
			return unit.Quantity{}, err
		}
		until := w.UntilDistance.SI()
		if until <= from && i > 0 {
			return unit.Quantity{}, domainError(function, "winds", "wind %d ends at %s, before the wind it follows", i, w.UntilDistance)
		}
		if i == len(winds)-1 || until > r {
			until = r
		}
		hw, err := w.Headwind(course)
		if err != nil {
			return unit.Quantity{}, err
		}
		sum += hw.SI() * (until - from)
		from = until
		if from >= r {
			break
		}
	}
	hw := unit.MustCreate(sum/r, unit.VelocityMPS)
	//velocities made by Mul or Div carry no unit name and stay in m/s
	if c, err := hw.Convert(winds[0].Velocity.Units()); err == nil {
		hw = c
	}
	return hw, nil
}
