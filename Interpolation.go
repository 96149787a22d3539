package go_jetfuelburn

import (
	"fmt"
	"math"
	"sort"
)

//DataPoint is one point of a tabulated function, A is the argument and B is the value
type DataPoint struct {
	A, B float64
}

//InterpolationTable is a tabulated function evaluated by linear interpolation
//between the points.
//
//Arguments outside of the table are not extrapolated.
type InterpolationTable struct {
	points []DataPoint
}

//CreateInterpolationTable creates a table from the arguments and the values.
//
//The points are sorted by the argument, arguments must be distinct and
//at least two points are required.
func CreateInterpolationTable(xs, ys []float64) (InterpolationTable, error) {
	if len(xs) != len(ys) {
		return InterpolationTable{}, fmt.Errorf("InterpolationTable: %d arguments but %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return InterpolationTable{}, fmt.Errorf("InterpolationTable: at least two points are required")
	}
	points := make([]DataPoint, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			return InterpolationTable{}, fmt.Errorf("InterpolationTable: point %d is not a number", i)
		}
		points[i] = DataPoint{A: xs[i], B: ys[i]}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].A < points[j].A })
	for i := 1; i < len(points); i++ {
		if points[i].A == points[i-1].A {
			return InterpolationTable{}, fmt.Errorf("InterpolationTable: argument %v is used twice", points[i].A)
		}
	}
	return InterpolationTable{points: points}, nil
}

//Min returns the smallest argument of the table
func (t InterpolationTable) Min() float64 {
	return t.points[0].A
}

//Max returns the largest argument of the table
func (t InterpolationTable) Max() float64 {
	return t.points[len(t.points)-1].A
}

//At returns the interpolated value at x.
//
//Both ends of the table are included, arguments outside of it are a DomainError.
func (t InterpolationTable) At(x float64) (float64, error) {
	if len(t.points) == 0 {
		return 0, fmt.Errorf("InterpolationTable: the table is empty")
	}
	if !(x >= t.Min() && x <= t.Max()) {
		return 0, domainError("Interpolate", "x", "must be within %v to %v, got %v", t.Min(), t.Max(), x)
	}

	var mlo, mhi, mid int
	mlo = 0
	mhi = len(t.points) - 1

	for (mhi - mlo) > 1 {
		mid = (mhi + mlo) / 2
		if t.points[mid].A < x {
			mlo = mid
		} else {
			mhi = mid
		}
	}

	p0 := t.points[mlo]
	p1 := t.points[mhi]
	return p0.B + (p1.B-p0.B)*(x-p0.A)/(p1.A-p0.A), nil
}

//Interpolate returns the linear interpolation of the function tabulated
//by xs and ys at x
func Interpolate(x float64, xs, ys []float64) (float64, error) {
	t, err := CreateInterpolationTable(xs, ys)
	if err != nil {
		return 0, err
	}
	return t.At(x)
}
