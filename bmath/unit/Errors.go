package unit

import (
	"errors"
	"fmt"
)

//ErrDimension is matched by every DimensionError using errors.Is
var ErrDimension = errors.New("dimension mismatch")

//ErrUnknownUnit is returned when a unit name is not registered
var ErrUnknownUnit = errors.New("unknown unit")

//DimensionError reports a quantity whose dimension differs from
//the dimension required by a formula or a conversion
type DimensionError struct {
	Parameter string
	Expected  Dimension
	Actual    Dimension
}

func (e *DimensionError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("Quantity: cannot combine %s with %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("Quantity: parameter %s must be %s, got %s", e.Parameter, e.Expected, e.Actual)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}
