package unit

//AreaSquareMeter is the name of the square meter unit
const AreaSquareMeter = "m²"

//AreaSquareFoot is the name of the square foot unit
const AreaSquareFoot = "ft²"

//DensityKgPerCubicMeter is the name of the kilograms per cubic meter unit
const DensityKgPerCubicMeter = "kg/m³"

//DensitySlugPerCubicFoot is the name of the slugs per cubic foot unit
const DensitySlugPerCubicFoot = "slug/ft³"

func areaDefinitions() []definition {
	return []definition{
		{name: AreaSquareMeter, aliases: []string{"m^2", "m2"}, dimension: Area, factor: 1, accuracy: 2},
		{name: AreaSquareFoot, aliases: []string{"ft^2", "sqft"}, dimension: Area, factor: 0.09290304, accuracy: 1},
	}
}

func densityDefinitions() []definition {
	return []definition{
		{name: DensityKgPerCubicMeter, aliases: []string{"kg/m^3", "kg/m3"}, dimension: Density, factor: 1, accuracy: 4},
		{name: DensitySlugPerCubicFoot, dimension: Density, factor: 515.378818, accuracy: 6},
	}
}
