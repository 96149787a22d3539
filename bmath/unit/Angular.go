package unit

import "math"

//AngularRadian is the name of the radian unit
const AngularRadian = "rad"

//AngularDegree is the name of the degree unit
const AngularDegree = "deg"

//AngularMOA is the name of the minute of angle unit
const AngularMOA = "moa"

//DimensionlessUnit is the name of the unit of pure numbers
const DimensionlessUnit = "1"

//Percent is the name of the percent unit
const Percent = "%"

func angularDefinitions() []definition {
	return []definition{
		{name: AngularRadian, aliases: []string{"radian"}, dimension: Angle, factor: 1, accuracy: 6},
		{name: AngularDegree, aliases: []string{"°", "degree"}, dimension: Angle, factor: math.Pi / 180, accuracy: 4},
		{name: AngularMOA, dimension: Angle, factor: math.Pi / 180 / 60, accuracy: 2},
	}
}

func dimensionlessDefinitions() []definition {
	return []definition{
		{name: DimensionlessUnit, aliases: []string{"", "dimensionless"}, dimension: Dimensionless, factor: 1, accuracy: 4},
		{name: Percent, aliases: []string{"percent"}, dimension: Dimensionless, factor: 0.01, accuracy: 2},
	}
}
