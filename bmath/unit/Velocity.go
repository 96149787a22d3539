package unit

//VelocityMPS is the name of the meters per second unit
const VelocityMPS = "m/s"

//VelocityKMH is the name of the kilometers per hour unit
const VelocityKMH = "kph"

//VelocityFPS is the name of the feet per second unit
const VelocityFPS = "ft/s"

//VelocityMPH is the name of the miles per hour unit
const VelocityMPH = "mph"

//VelocityKT is the name of the knot unit
const VelocityKT = "kt"

//AccelerationMPS2 is the name of the meters per second squared unit
const AccelerationMPS2 = "m/s²"

func velocityDefinitions() []definition {
	return []definition{
		{name: VelocityMPS, dimension: Velocity, factor: 1, accuracy: 2},
		{name: VelocityKMH, aliases: []string{"km/h", "kmh"}, dimension: Velocity, factor: 1 / 3.6, accuracy: 1},
		{name: VelocityFPS, aliases: []string{"fps"}, dimension: Velocity, factor: 0.3048, accuracy: 1},
		{name: VelocityMPH, dimension: Velocity, factor: 0.44704, accuracy: 1},
		{name: VelocityKT, aliases: []string{"knot", "kn"}, dimension: Velocity, factor: 1852.0 / 3600.0, accuracy: 1},
	}
}

func accelerationDefinitions() []definition {
	return []definition{
		{name: AccelerationMPS2, aliases: []string{"m/s^2", "m/s2"}, dimension: Acceleration, factor: 1, accuracy: 5},
	}
}
