package unit

//MassGram is the name of the gram unit
const MassGram = "g"

//MassMilligram is the name of the milligram unit
const MassMilligram = "mg"

//MassKilogram is the name of the kilogram unit
const MassKilogram = "kg"

//MassPound is the name of the avoirdupois pound unit
const MassPound = "lb"

//MassMetricTon is the name of the metric ton (1000 kg) unit
const MassMetricTon = "t"

//MassShortTon is the name of the US short ton (2000 lb) unit
const MassShortTon = "short_ton"

//MassLongTon is the name of the imperial long ton (2240 lb) unit
const MassLongTon = "long_ton"

const cPound float64 = 0.45359237

func massDefinitions() []definition {
	return []definition{
		{name: MassMilligram, dimension: Mass, factor: 1e-6, accuracy: 1},
		{name: MassGram, aliases: []string{"gram"}, dimension: Mass, factor: 1e-3, accuracy: 1},
		{name: MassKilogram, aliases: []string{"kilogram"}, dimension: Mass, factor: 1, accuracy: 3},
		{name: MassPound, aliases: []string{"pound", "lbs"}, dimension: Mass, factor: cPound, accuracy: 3},
		{name: MassMetricTon, aliases: []string{"metric_ton", "tonne"}, dimension: Mass, factor: 1000, accuracy: 3},
		{name: MassShortTon, dimension: Mass, factor: 2000 * cPound, accuracy: 3},
		{name: MassLongTon, dimension: Mass, factor: 2240 * cPound, accuracy: 3},
	}
}
