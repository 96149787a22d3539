package unit

//PressurePascal is the name of the pascal unit
const PressurePascal = "Pa"

//PressureHectopascal is the name of the hectopascal unit
const PressureHectopascal = "hPa"

//PressureMmHg is the name of the millimeters of mercury unit
const PressureMmHg = "mmHg"

//PressureInHg is the name of the inches of mercury unit
const PressureInHg = "inHg"

//PressureBar is the name of the bar unit
const PressureBar = "bar"

//PressurePSI is the name of the pounds per square inch unit
const PressurePSI = "psi"

func pressureDefinitions() []definition {
	return []definition{
		{name: PressurePascal, dimension: Pressure, factor: 1, accuracy: 0},
		{name: PressureHectopascal, aliases: []string{"mbar"}, dimension: Pressure, factor: 100, accuracy: 2},
		{name: PressureMmHg, dimension: Pressure, factor: 133.322387415, accuracy: 0},
		{name: PressureInHg, dimension: Pressure, factor: 3386.389, accuracy: 2},
		{name: PressureBar, dimension: Pressure, factor: 1e5, accuracy: 2},
		{name: PressurePSI, dimension: Pressure, factor: 6894.757293168, accuracy: 4},
	}
}
