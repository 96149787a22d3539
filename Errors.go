package go_jetfuelburn

import (
	"errors"
	"fmt"
	"strings"
)

//ErrDomain is matched by every DomainError using errors.Is
var ErrDomain = errors.New("value out of domain")

//ErrDegenerateAllocation is returned when a cabin has no seats at all
var ErrDegenerateAllocation = fmt.Errorf("cabin has no seats: %w", ErrDomain)

//DomainError reports a dimensionally correct parameter whose value
//is outside of the range the formula is defined for
type DomainError struct {
	Function  string
	Parameter string
	Reason    string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: parameter %s %s", e.Function, e.Parameter, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainError(function, parameter, format string, args ...any) error {
	return &DomainError{Function: function, Parameter: parameter, Reason: fmt.Sprintf(format, args...)}
}

//ErrUnknownAircraft is matched by every UnknownAircraftError using errors.Is
var ErrUnknownAircraft = errors.New("unknown aircraft")

//UnknownAircraftError reports an aircraft identifier or a size class
//which is not in the table of a model
type UnknownAircraftError struct {
	Model      string
	Identifier string
	Valid      []string
}

func (e *UnknownAircraftError) Error() string {
	return fmt.Sprintf("%s: aircraft %q not found in model data, use one of %s",
		e.Model, e.Identifier, strings.Join(e.Valid, ", "))
}

func (e *UnknownAircraftError) Is(target error) bool {
	return target == ErrUnknownAircraft
}
