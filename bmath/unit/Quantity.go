//The package provides physical quantities: magnitudes tagged with
//a unit and a dimension, unit conversion and dimension checked arithmetic
package unit

import (
	"fmt"
	"math"

	gunit "gonum.org/v1/gonum/unit"
)

//Quantity is a physical value.
//
//The magnitude is kept in SI base units, the unit name
//is used for display and default conversions only.
//A Quantity produced by Mul or Div is displayed in SI base units.
type Quantity struct {
	value     float64
	dimension Dimension
	units     string
}

//Value returns the magnitude of the quantity in the specified units.
//
//The method returns an error if the unit is not supported or
//belongs to a different dimension.
func (q Quantity) Value(units string) (float64, error) {
	d, err := DefaultRegistry().lookup(units)
	if err != nil {
		return 0, err
	}
	if !d.dimension.Matches(q.dimension) {
		return 0, &DimensionError{Expected: d.dimension, Actual: q.dimension}
	}
	return d.fromDefault(q.value), nil
}

//In returns the magnitude in the specified units.
//Returns 0 if unit conversion is not possible.
func (q Quantity) In(units string) float64 {
	x, e := q.Value(units)
	if e != nil {
		return 0
	}
	return x
}

//Convert returns the same quantity displayed in the specified units
func (q Quantity) Convert(units string) (Quantity, error) {
	if _, err := q.Value(units); err != nil {
		return Quantity{}, err
	}
	d, _ := DefaultRegistry().lookup(units)
	return Quantity{value: q.value, dimension: q.dimension, units: d.name}, nil
}

//MustConvert is Convert that panics on error
func (q Quantity) MustConvert(units string) Quantity {
	c, err := q.Convert(units)
	if err != nil {
		panic(err)
	}
	return c
}

//SI returns the magnitude in SI base units
func (q Quantity) SI() float64 {
	return q.value
}

//Units returns the display unit name, or an empty string for SI base units
func (q Quantity) Units() string {
	return q.units
}

//Dimension returns the physical dimension of the quantity
func (q Quantity) Dimension() Dimension {
	return q.dimension
}

//Check returns a DimensionError naming the parameter if the quantity
//does not have the expected dimension
func (q Quantity) Check(parameter string, expected Dimension) error {
	if !q.dimension.Matches(expected) {
		return &DimensionError{Parameter: parameter, Expected: expected, Actual: q.dimension}
	}
	return nil
}

//Add returns the sum of two quantities in the units of the receiver
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if !q.dimension.Matches(other.dimension) {
		return Quantity{}, &DimensionError{Expected: q.dimension, Actual: other.dimension}
	}
	u := q.dimension.unit(q.value).Add(other.dimension.unit(other.value))
	return Quantity{value: u.Value(), dimension: q.dimension, units: q.units}, nil
}

//Sub returns the difference of two quantities in the units of the receiver
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	return q.Add(other.Neg())
}

//Mul returns the product of two quantities, dimensions are multiplied
func (q Quantity) Mul(other Quantity) Quantity {
	u := q.dimension.unit(q.value).Mul(other.dimension.unit(other.value))
	return fromGonum(u)
}

//Div returns the ratio of two quantities, dimensions are divided
func (q Quantity) Div(other Quantity) Quantity {
	u := q.dimension.unit(q.value).Div(other.dimension.unit(other.value))
	return fromGonum(u)
}

func fromGonum(u *gunit.Unit) Quantity {
	return Quantity{value: u.Value(), dimension: createDimension(u.Dimensions())}
}

//Scale multiplies the magnitude by a dimensionless factor
func (q Quantity) Scale(factor float64) Quantity {
	return Quantity{value: q.value * factor, dimension: q.dimension, units: q.units}
}

//Neg returns the quantity with the opposite sign
func (q Quantity) Neg() Quantity {
	return q.Scale(-1)
}

//Sign returns -1, 0 or 1 depending on the sign of the magnitude
func (q Quantity) Sign() int {
	switch {
	case q.value > 0:
		return 1
	case q.value < 0:
		return -1
	default:
		return 0
	}
}

//IsZero returns true if the magnitude is zero
func (q Quantity) IsZero() bool {
	return q.value == 0
}

//Compare returns -1, 0 or 1 comparing the receiver with another quantity
//of the same dimension
func (q Quantity) Compare(other Quantity) (int, error) {
	if !q.dimension.Matches(other.dimension) {
		return 0, &DimensionError{Expected: q.dimension, Actual: other.dimension}
	}
	switch {
	case q.value < other.value:
		return -1, nil
	case q.value > other.value:
		return 1, nil
	default:
		return 0, nil
	}
}

func (q Quantity) String() string {
	if q.units == "" {
		return fmt.Sprintf("%.6g", q.dimension.unit(q.value))
	}
	d, err := DefaultRegistry().lookup(q.units)
	if err != nil {
		return "!error: default units aren't correct"
	}
	x := d.fromDefault(q.value)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprintf("%v%s", x, d.name)
	}
	format := fmt.Sprintf("%%.%df%%s", d.accuracy)
	return fmt.Sprintf(format, x, d.name)
}

//Requirement binds a named formula parameter to the dimension it must have
type Requirement struct {
	name      string
	quantity  Quantity
	dimension Dimension
}

//Expect creates a requirement for the Require check
func Expect(name string, quantity Quantity, dimension Dimension) Requirement {
	return Requirement{name: name, quantity: quantity, dimension: dimension}
}

//Require checks the requirements in order and returns the error
//for the first parameter with a wrong dimension
func Require(requirements ...Requirement) error {
	for _, r := range requirements {
		if err := r.quantity.Check(r.name, r.dimension); err != nil {
			return err
		}
	}
	return nil
}
