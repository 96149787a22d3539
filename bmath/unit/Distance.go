package unit

//DistanceInch is the name of the inch unit
const DistanceInch = "in"

//DistanceFoot is the name of the foot unit
const DistanceFoot = "ft"

//DistanceYard is the name of the yard unit
const DistanceYard = "yd"

//DistanceMile is the name of the statute mile unit
const DistanceMile = "mi"

//DistanceNauticalMile is the name of the nautical mile unit
const DistanceNauticalMile = "nmi"

//DistanceMillimeter is the name of the millimeter unit
const DistanceMillimeter = "mm"

//DistanceCentimeter is the name of the centimeter unit
const DistanceCentimeter = "cm"

//DistanceMeter is the name of the meter unit
const DistanceMeter = "m"

//DistanceKilometer is the name of the kilometer unit
const DistanceKilometer = "km"

func distanceDefinitions() []definition {
	return []definition{
		{name: DistanceInch, aliases: []string{"inch"}, dimension: Length, factor: 0.0254, accuracy: 1},
		{name: DistanceFoot, aliases: []string{"foot", "feet"}, dimension: Length, factor: 0.3048, accuracy: 0},
		{name: DistanceYard, aliases: []string{"yard"}, dimension: Length, factor: 0.9144, accuracy: 0},
		{name: DistanceMile, aliases: []string{"mile"}, dimension: Length, factor: 1609.344, accuracy: 1},
		{name: DistanceNauticalMile, aliases: []string{"nautical_mile", "NM"}, dimension: Length, factor: 1852, accuracy: 1},
		{name: DistanceMillimeter, dimension: Length, factor: 1e-3, accuracy: 0},
		{name: DistanceCentimeter, dimension: Length, factor: 1e-2, accuracy: 1},
		{name: DistanceMeter, aliases: []string{"meter", "metre"}, dimension: Length, factor: 1, accuracy: 1},
		{name: DistanceKilometer, aliases: []string{"kilometer", "kilometre"}, dimension: Length, factor: 1000, accuracy: 3},
	}
}
