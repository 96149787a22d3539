package go_jetfuelburn

import (
	"math"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

//CorrectTSFC corrects a thrust specific fuel consumption reported at one
//flight condition to another flight condition
//
//	TSFC_act = TSFC_rep·(M_act/M_rep)^β·sqrt(θ_act/θ_rep)
//
//where θ is the ISA temperature ratio T/T0 at the altitude (Martinez-Val
//and Perez, 1992). β is the Mach exponent of the engine, about 0.5 for
//high bypass turbofans. The result is expressed in the units of tsfcReported.
func CorrectTSFC(tsfcReported unit.Quantity, machReported, machActual float64, hReported, hActual unit.Quantity, beta float64) (unit.Quantity, error) {
	const function = "CorrectTSFC"
	err := unit.Require(
		unit.Expect("TSFC_reported", tsfcReported, unit.Tsfc),
		unit.Expect("h_reported", hReported, unit.Length),
		unit.Expect("h_actual", hActual, unit.Length))
	if err != nil {
		return unit.Quantity{}, err
	}
	if tsfcReported.Sign() <= 0 {
		return unit.Quantity{}, domainError(function, "TSFC_reported", "must be positive, got %s", tsfcReported)
	}
	if !(machReported > 0) {
		return unit.Quantity{}, domainError(function, "M_reported", "must be positive, got %v", machReported)
	}
	if !(machActual > 0) {
		return unit.Quantity{}, domainError(function, "M_actual", "must be positive, got %v", machActual)
	}
	if !(beta >= 0) {
		return unit.Quantity{}, domainError(function, "beta", "must not be negative, got %v", beta)
	}
	hr, err := checkAltitude(function, hReported)
	if err != nil {
		return unit.Quantity{}, err
	}
	ha, err := checkAltitude(function, hActual)
	if err != nil {
		return unit.Quantity{}, err
	}

	factor := math.Pow(machActual/machReported, beta) * math.Sqrt(isaTemperature(ha)/isaTemperature(hr))
	return tsfcReported.Scale(factor), nil
}
