package unit

//TimeSecond is the name of the second unit
const TimeSecond = "s"

//TimeMinute is the name of the minute unit
const TimeMinute = "min"

//TimeHour is the name of the hour unit
const TimeHour = "h"

func timeDefinitions() []definition {
	return []definition{
		{name: TimeSecond, aliases: []string{"sec", "second"}, dimension: Time, factor: 1, accuracy: 1},
		{name: TimeMinute, aliases: []string{"minute"}, dimension: Time, factor: 60, accuracy: 2},
		{name: TimeHour, aliases: []string{"hr", "hour"}, dimension: Time, factor: 3600, accuracy: 3},
	}
}
