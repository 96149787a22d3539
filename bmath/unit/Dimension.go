package unit

import (
	gunit "gonum.org/v1/gonum/unit"
)

//Dimension is the physical dimension of a quantity expressed as
//powers of the SI base dimensions (length, mass, time, temperature, angle)
type Dimension struct {
	powers gunit.Dimensions
}

func createDimension(powers gunit.Dimensions) Dimension {
	d := make(gunit.Dimensions, len(powers))
	for k, v := range powers {
		if v != 0 {
			d[k] = v
		}
	}
	return Dimension{powers: d}
}

//Dimensionless is the dimension of pure numbers (ratios, Mach number, load factors)
var Dimensionless = createDimension(gunit.Dimensions{})

//Length is the dimension of distances, ranges and altitudes
var Length = createDimension(gunit.Dimensions{gunit.LengthDim: 1})

//Mass is the dimension of masses (fuel, payload, aircraft weights given in kg)
var Mass = createDimension(gunit.Dimensions{gunit.MassDim: 1})

//Time is the dimension of durations
var Time = createDimension(gunit.Dimensions{gunit.TimeDim: 1})

//Temperature is the dimension of thermodynamic temperatures
var Temperature = createDimension(gunit.Dimensions{gunit.TemperatureDim: 1})

//Angle is the dimension of plane angles (latitudes, longitudes)
var Angle = createDimension(gunit.Dimensions{gunit.AngleDim: 1})

//Area is the dimension of surfaces such as the wing reference area
var Area = createDimension(gunit.Dimensions{gunit.LengthDim: 2})

//Velocity is the dimension of speeds
var Velocity = createDimension(gunit.Dimensions{gunit.LengthDim: 1, gunit.TimeDim: -1})

//Acceleration is the dimension of accelerations
var Acceleration = createDimension(gunit.Dimensions{gunit.LengthDim: 1, gunit.TimeDim: -2})

//Force is the dimension of forces, including weights expressed in newtons
var Force = createDimension(gunit.Dimensions{gunit.MassDim: 1, gunit.LengthDim: 1, gunit.TimeDim: -2})

//Density is the dimension of mass densities
var Density = createDimension(gunit.Dimensions{gunit.MassDim: 1, gunit.LengthDim: -3})

//Pressure is the dimension of pressures, including dynamic pressure
var Pressure = createDimension(gunit.Dimensions{gunit.MassDim: 1, gunit.LengthDim: -1, gunit.TimeDim: -2})

//Tsfc is the dimension of the thrust specific fuel consumption.
//
//Mass flow per unit thrust, kg/(N·s), reduces to s/m.
var Tsfc = createDimension(gunit.Dimensions{gunit.TimeDim: 1, gunit.LengthDim: -1})

//MassFlow is the dimension of fuel flows
var MassFlow = createDimension(gunit.Dimensions{gunit.MassDim: 1, gunit.TimeDim: -1})

//Frequency is the dimension of rates such as weight specific fuel consumption (1/s)
var Frequency = createDimension(gunit.Dimensions{gunit.TimeDim: -1})

var dimensionNames = []struct {
	dimension Dimension
	name      string
}{
	{Dimensionless, "dimensionless"},
	{Length, "length"},
	{Mass, "mass"},
	{Time, "time"},
	{Temperature, "temperature"},
	{Angle, "angle"},
	{Area, "area"},
	{Velocity, "velocity"},
	{Acceleration, "acceleration"},
	{Force, "force"},
	{Density, "density"},
	{Pressure, "pressure"},
	{Tsfc, "thrust specific fuel consumption"},
	{MassFlow, "mass flow"},
	{Frequency, "frequency"},
}

func (d Dimension) unit(value float64) *gunit.Unit {
	if d.powers == nil {
		return gunit.New(value, gunit.Dimensions{})
	}
	return gunit.New(value, d.powers)
}

//Matches returns true if both dimensions have the same powers
func (d Dimension) Matches(other Dimension) bool {
	return gunit.DimensionsMatch(d.unit(1), other.unit(1))
}

//Mul returns the dimension of a product of two quantities
func (d Dimension) Mul(other Dimension) Dimension {
	return Dimension{powers: d.unit(1).Mul(other.unit(1)).Dimensions()}
}

//Div returns the dimension of a ratio of two quantities
func (d Dimension) Div(other Dimension) Dimension {
	return Dimension{powers: d.unit(1).Div(other.unit(1)).Dimensions()}
}

//Symbol returns the dimension as SI base unit powers, e.g. "kg m s^-2"
func (d Dimension) Symbol() string {
	return d.powers.String()
}

func (d Dimension) String() string {
	for _, n := range dimensionNames {
		if n.dimension.Matches(d) {
			return n.name
		}
	}
	return "[" + d.Symbol() + "]"
}
