package unit

//TsfcMgPerNs is the name of the milligrams per newton second unit
const TsfcMgPerNs = "mg/(N·s)"

//TsfcGPerKNs is the name of the grams per kilonewton second unit
const TsfcGPerKNs = "g/(kN·s)"

//TsfcKgPerNh is the name of the kilograms per newton hour unit
const TsfcKgPerNh = "kg/(N·h)"

//TsfcLbPerLbfh is the name of the pounds per pound-force hour unit
const TsfcLbPerLbfh = "lb/(lbf·h)"

//MassFlowKgPerSecond is the name of the kilograms per second unit
const MassFlowKgPerSecond = "kg/s"

//MassFlowKgPerHour is the name of the kilograms per hour unit
const MassFlowKgPerHour = "kg/h"

//MassFlowLbPerHour is the name of the pounds per hour unit
const MassFlowLbPerHour = "lb/h"

//FrequencyPerSecond is the name of the reciprocal second unit
const FrequencyPerSecond = "1/s"

//FrequencyPerHour is the name of the reciprocal hour unit
const FrequencyPerHour = "1/h"

func tsfcDefinitions() []definition {
	return []definition{
		{name: TsfcMgPerNs, aliases: []string{"mg/(N*s)", "mg/N/s"}, dimension: Tsfc, factor: 1e-6, accuracy: 3},
		{name: TsfcGPerKNs, aliases: []string{"g/(kN*s)", "g/kN/s"}, dimension: Tsfc, factor: 1e-6, accuracy: 3},
		{name: TsfcKgPerNh, aliases: []string{"kg/(N*h)"}, dimension: Tsfc, factor: 1.0 / 3600, accuracy: 6},
		{name: TsfcLbPerLbfh, aliases: []string{"lb/(lbf*h)", "lb/(lbf*hr)"}, dimension: Tsfc, factor: 1 / (StandardGravity * 3600), accuracy: 4},
	}
}

func massFlowDefinitions() []definition {
	return []definition{
		{name: MassFlowKgPerSecond, dimension: MassFlow, factor: 1, accuracy: 4},
		{name: MassFlowKgPerHour, dimension: MassFlow, factor: 1.0 / 3600, accuracy: 1},
		{name: MassFlowLbPerHour, aliases: []string{"lb/hr"}, dimension: MassFlow, factor: cPound / 3600, accuracy: 1},
	}
}

func frequencyDefinitions() []definition {
	return []definition{
		{name: FrequencyPerSecond, aliases: []string{"Hz"}, dimension: Frequency, factor: 1, accuracy: 6},
		{name: FrequencyPerHour, dimension: Frequency, factor: 1.0 / 3600, accuracy: 4},
	}
}
