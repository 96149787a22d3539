package unit

//ForceNewton is the name of the newton unit
const ForceNewton = "N"

//ForceKilonewton is the name of the kilonewton unit
const ForceKilonewton = "kN"

//ForcePound is the name of the pound-force unit
const ForcePound = "lbf"

//StandardGravity is the standard acceleration of free fall, m/s²
const StandardGravity float64 = 9.80665

func forceDefinitions() []definition {
	return []definition{
		{name: ForceNewton, aliases: []string{"newton"}, dimension: Force, factor: 1, accuracy: 1},
		{name: ForceKilonewton, dimension: Force, factor: 1e3, accuracy: 3},
		{name: ForcePound, aliases: []string{"pound_force"}, dimension: Force, factor: cPound * StandardGravity, accuracy: 1},
	}
}
