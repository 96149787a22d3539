package unit

//TemperatureFahrenheit is the name of the degrees of Fahrenheit unit
const TemperatureFahrenheit = "degF"

//TemperatureCelsius is the name of the degrees of Celsius unit
const TemperatureCelsius = "degC"

//TemperatureKelvin is the name of the Kelvin unit
const TemperatureKelvin = "K"

//TemperatureRankin is the name of the degrees of Rankin unit
const TemperatureRankin = "degR"

func temperatureDefinitions() []definition {
	return []definition{
		{name: TemperatureKelvin, aliases: []string{"kelvin"}, dimension: Temperature, factor: 1, accuracy: 2},
		{name: TemperatureCelsius, aliases: []string{"°C", "celsius"}, dimension: Temperature, factor: 1, offset: 273.15, accuracy: 2},
		{name: TemperatureFahrenheit, aliases: []string{"°F", "fahrenheit"}, dimension: Temperature, factor: 5.0 / 9.0, offset: 459.67 * 5.0 / 9.0, accuracy: 1},
		{name: TemperatureRankin, aliases: []string{"°R", "rankine"}, dimension: Temperature, factor: 5.0 / 9.0, accuracy: 1},
	}
}
