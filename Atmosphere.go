package go_jetfuelburn

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

const cSeaLevelTemperatureK float64 = 288.15
const cStratosphereTemperatureK float64 = 216.65
const cLapseRate float64 = 0.0065 // K/m
const cTropopauseAltitude float64 = 11000
const cMaximumAltitude float64 = 20000
const cSeaLevelDensity float64 = 1.225
const cTropopauseDensity float64 = 0.36391
const cSeaLevelPressure float64 = 101325
const cTropopausePressure float64 = 22632.06
const cMolarMassAir float64 = 0.0289644
const cUniversalGasConstant float64 = 8.3144598
const cSpecificGasConstant float64 = 287.052874
const cHeatCapacityRatio float64 = 1.4

//Atmosphere describes the International Standard Atmosphere at one altitude
type Atmosphere struct {
	altitude    unit.Quantity
	temperature unit.Quantity
	pressure    unit.Quantity
	density     unit.Quantity
	mach        unit.Quantity
}

//CreateISAAtmosphere creates the standard atmosphere for the altitude specified.
//
//The altitude must be within 0 to 20000 meters.
func CreateISAAtmosphere(altitude unit.Quantity) (Atmosphere, error) {
	h, err := checkAltitude("CreateISAAtmosphere", altitude)
	if err != nil {
		return Atmosphere{}, err
	}
	t := isaTemperature(h)
	return Atmosphere{
		altitude:    altitude,
		temperature: unit.MustCreate(t-273.15, unit.TemperatureCelsius),
		pressure:    unit.MustCreate(isaPressure(h), unit.PressurePascal),
		density:     unit.MustCreate(isaDensity(h), unit.DensityKgPerCubicMeter),
		mach:        unit.MustCreate(speedOfSound(t), unit.VelocityMPS),
	}, nil
}

//Altitude returns the altitude over the sea level
func (a Atmosphere) Altitude() unit.Quantity {
	return a.altitude
}

//Temperature returns the air temperature
func (a Atmosphere) Temperature() unit.Quantity {
	return a.temperature
}

//Pressure returns the static air pressure
func (a Atmosphere) Pressure() unit.Quantity {
	return a.pressure
}

//Density returns the air density
func (a Atmosphere) Density() unit.Quantity {
	return a.density
}

//Mach returns the speed of sound
func (a Atmosphere) Mach() unit.Quantity {
	return a.mach
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Pressure:%s,Temperature:%s,Density:%s",
		a.altitude, a.pressure, a.temperature, a.density)
}

//AtmosphericTemperature returns the ISA air temperature in degrees Celsius.
//
//The temperature falls by 6.5K per kilometer from 15°C at the sea level
//and stays at -56.5°C above the tropopause (11000 meters).
func AtmosphericTemperature(altitude unit.Quantity) (unit.Quantity, error) {
	h, err := checkAltitude("AtmosphericTemperature", altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(isaTemperature(h)-273.15, unit.TemperatureCelsius), nil
}

//AtmosphericDensity returns the ISA air density in kg/m³
func AtmosphericDensity(altitude unit.Quantity) (unit.Quantity, error) {
	h, err := checkAltitude("AtmosphericDensity", altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(isaDensity(h), unit.DensityKgPerCubicMeter), nil
}

//AtmosphericPressure returns the ISA static pressure in hectopascals
func AtmosphericPressure(altitude unit.Quantity) (unit.Quantity, error) {
	h, err := checkAltitude("AtmosphericPressure", altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(isaPressure(h), unit.PressurePascal).MustConvert(unit.PressureHectopascal), nil
}

//SpeedOfSound returns the speed of sound in dry air at the altitude, a = sqrt(γ·R·T)
func SpeedOfSound(altitude unit.Quantity) (unit.Quantity, error) {
	h, err := checkAltitude("SpeedOfSound", altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.MustCreate(speedOfSound(isaTemperature(h)), unit.VelocityMPS).MustConvert(unit.VelocityKMH), nil
}

//AircraftVelocity converts the Mach number (dimensionless) to the true
//airspeed at the altitude. The result is expressed in km/h.
func AircraftVelocity(mach float64, altitude unit.Quantity) (unit.Quantity, error) {
	if mach < 0 || math.IsNaN(mach) {
		return unit.Quantity{}, domainError("AircraftVelocity", "mach", "must not be negative, got %v", mach)
	}
	a, err := SpeedOfSound(altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	return a.Scale(mach), nil
}

//MachNumber returns the Mach number of the true airspeed at the altitude
func MachNumber(velocity, altitude unit.Quantity) (float64, error) {
	if err := velocity.Check("velocity", unit.Velocity); err != nil {
		return 0, err
	}
	a, err := SpeedOfSound(altitude)
	if err != nil {
		return 0, err
	}
	return velocity.SI() / a.SI(), nil
}

//DynamicPressure returns q = ½ρV² at the altitude, in pascals
func DynamicPressure(velocity, altitude unit.Quantity) (unit.Quantity, error) {
	if err := velocity.Check("velocity", unit.Velocity); err != nil {
		return unit.Quantity{}, err
	}
	rho, err := AtmosphericDensity(altitude)
	if err != nil {
		return unit.Quantity{}, err
	}
	v := velocity.SI()
	return unit.MustCreate(0.5*rho.SI()*v*v, unit.PressurePascal), nil
}

func checkAltitude(function string, altitude unit.Quantity) (float64, error) {
	if err := altitude.Check("altitude", unit.Length); err != nil {
		return 0, err
	}
	h := altitude.SI()
	if h < 0 || h > cMaximumAltitude || math.IsNaN(h) {
		return 0, domainError(function, "altitude", "must be within 0 to 20000 m, got %s", altitude)
	}
	return h, nil
}

//isaTemperature returns the temperature in kelvins, h is in meters
func isaTemperature(h float64) float64 {
	if h <= cTropopauseAltitude {
		return cSeaLevelTemperatureK - cLapseRate*h
	}
	return cStratosphereTemperatureK
}

func isaDensity(h float64) float64 {
	if h <= cTropopauseAltitude {
		exponent := unit.StandardGravity*cMolarMassAir/(cUniversalGasConstant*cLapseRate) - 1
		return cSeaLevelDensity * math.Pow(isaTemperature(h)/cSeaLevelTemperatureK, exponent)
	}
	return cTropopauseDensity * math.Exp(-unit.StandardGravity*cMolarMassAir*(h-cTropopauseAltitude)/
		(cUniversalGasConstant*cStratosphereTemperatureK))
}

func isaPressure(h float64) float64 {
	if h <= cTropopauseAltitude {
		exponent := unit.StandardGravity * cMolarMassAir / (cUniversalGasConstant * cLapseRate)
		return cSeaLevelPressure * math.Pow(isaTemperature(h)/cSeaLevelTemperatureK, exponent)
	}
	return cTropopausePressure * math.Exp(-unit.StandardGravity*cMolarMassAir*(h-cTropopauseAltitude)/
		(cUniversalGasConstant*cStratosphereTemperatureK))
}

//speedOfSound returns the speed of sound in m/s, t is in kelvins
func speedOfSound(t float64) float64 {
	return math.Sqrt(cHeatCapacityRatio * cSpecificGasConstant * t)
}
