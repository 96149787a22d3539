package unit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
)

func backAndForth(t *testing.T, value float64, units string) {
	u, e1 := unit.Create(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %s", units)
		return
	}
	v, e2 := u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %s", units)
	}
}

func roundTrip(t *testing.T, value float64, from, to string) {
	u := unit.MustCreate(value, from)
	c, err := u.Convert(to)
	if err != nil {
		t.Errorf("Conversion %s -> %s failed: %v", from, to, err)
		return
	}
	back := c.In(from)
	if math.Abs(back-value) > 1e-9*math.Max(1, math.Abs(value)) {
		t.Errorf("Round trip %s -> %s -> %s failed: %f != %f", from, to, from, back, value)
	}
}

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

func TestAngular(t *testing.T) {
	backAndForth(t, 3, unit.AngularDegree)
	backAndForth(t, 3, unit.AngularMOA)
	backAndForth(t, 3, unit.AngularRadian)

	u := unit.MustCreate(180, unit.AngularDegree)
	assertEqual(t, u.In(unit.AngularRadian), math.Pi, 1e-12, "180deg")
}

func TestDistance(t *testing.T) {
	backAndForth(t, 3, unit.DistanceCentimeter)
	backAndForth(t, 3, unit.DistanceFoot)
	backAndForth(t, 3, unit.DistanceInch)
	backAndForth(t, 3, unit.DistanceKilometer)
	backAndForth(t, 3, unit.DistanceMeter)
	backAndForth(t, 3, unit.DistanceMile)
	backAndForth(t, 3, unit.DistanceMillimeter)
	backAndForth(t, 3, unit.DistanceNauticalMile)
	backAndForth(t, 3, unit.DistanceYard)

	assertEqual(t, unit.MustCreate(1, unit.DistanceNauticalMile).In(unit.DistanceKilometer), 1.852, 1e-12, "nmi")
	roundTrip(t, 2000, unit.DistanceNauticalMile, unit.DistanceKilometer)
	roundTrip(t, 35000, unit.DistanceFoot, unit.DistanceMeter)
}

func TestMass(t *testing.T) {
	backAndForth(t, 3, unit.MassGram)
	backAndForth(t, 3, unit.MassMilligram)
	backAndForth(t, 3, unit.MassKilogram)
	backAndForth(t, 3, unit.MassPound)
	backAndForth(t, 3, unit.MassMetricTon)
	backAndForth(t, 3, unit.MassShortTon)
	backAndForth(t, 3, unit.MassLongTon)

	roundTrip(t, 100, unit.MassKilogram, unit.MassPound)
	roundTrip(t, 12.5, unit.MassShortTon, unit.MassMetricTon)
	assertEqual(t, unit.MustCreate(1, unit.MassShortTon).In(unit.MassMetricTon), 0.90718474, 1e-9, "short ton")
	assertEqual(t, unit.MustCreate(100, "metric_ton").In(unit.MassKilogram), 100000, 1e-9, "metric_ton alias")
}

func TestForce(t *testing.T) {
	backAndForth(t, 3, unit.ForceNewton)
	backAndForth(t, 3, unit.ForceKilonewton)
	backAndForth(t, 3, unit.ForcePound)
	assertEqual(t, unit.MustCreate(1, unit.ForcePound).In(unit.ForceNewton), 4.4482216152605, 1e-9, "lbf")
}

func TestPressure(t *testing.T) {
	backAndForth(t, 3, unit.PressurePascal)
	backAndForth(t, 3, unit.PressureHectopascal)
	backAndForth(t, 3, unit.PressureBar)
	backAndForth(t, 3, unit.PressureMmHg)
	backAndForth(t, 3, unit.PressureInHg)
	backAndForth(t, 3, unit.PressurePSI)
}

func TestTemperature(t *testing.T) {
	backAndForth(t, 3, unit.TemperatureCelsius)
	backAndForth(t, 3, unit.TemperatureFahrenheit)
	backAndForth(t, 3, unit.TemperatureKelvin)
	backAndForth(t, 3, unit.TemperatureRankin)

	c := unit.MustCreate(-56.5, unit.TemperatureCelsius)
	assertEqual(t, c.In(unit.TemperatureKelvin), 216.65, 1e-9, "degC->K")
	assertEqual(t, unit.MustCreate(59, unit.TemperatureFahrenheit).In(unit.TemperatureCelsius), 15, 1e-9, "degF->degC")
}

func TestVelocity(t *testing.T) {
	backAndForth(t, 3, unit.VelocityFPS)
	backAndForth(t, 3, unit.VelocityKMH)
	backAndForth(t, 3, unit.VelocityKT)
	backAndForth(t, 3, unit.VelocityMPH)
	backAndForth(t, 3, unit.VelocityMPS)

	assertEqual(t, unit.MustCreate(36, "km/h").In(unit.VelocityMPS), 10, 1e-12, "km/h alias")
}

func TestConsumption(t *testing.T) {
	backAndForth(t, 3, unit.TsfcMgPerNs)
	backAndForth(t, 3, unit.TsfcGPerKNs)
	backAndForth(t, 3, unit.TsfcKgPerNh)
	backAndForth(t, 3, unit.TsfcLbPerLbfh)
	backAndForth(t, 3, unit.MassFlowKgPerSecond)
	backAndForth(t, 3, unit.MassFlowLbPerHour)
	backAndForth(t, 3, unit.FrequencyPerHour)

	//0.5 lb/(lbf·h) is a typical high bypass turbofan cruise value, about 14.163 mg/(N·s)
	assertEqual(t, unit.MustCreate(0.5, unit.TsfcLbPerLbfh).In(unit.TsfcMgPerNs), 14.1627, 1e-3, "lb/(lbf·h)")
}

func TestUnknownUnit(t *testing.T) {
	_, err := unit.Create(1, "furlong")
	if !errors.Is(err, unit.ErrUnknownUnit) {
		t.Errorf("Unknown unit must fail, got %v", err)
	}
	if unit.MustCreate(1, unit.MassKilogram).In("furlong") != 0 {
		t.Errorf("In must return 0 on unknown unit")
	}
}

func TestConversionDimensionMismatch(t *testing.T) {
	m := unit.MustCreate(100, unit.MassKilogram)
	_, err := m.Convert(unit.DistanceKilometer)
	var de *unit.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("Expected dimension error, got %v", err)
	}
	if !de.Expected.Matches(unit.Length) || !de.Actual.Matches(unit.Mass) {
		t.Errorf("Wrong dimensions in error: %v", de)
	}
}

func TestArithmetic(t *testing.T) {
	a := unit.MustCreate(1, unit.MassMetricTon)
	b := unit.MustCreate(500, unit.MassKilogram)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Units() != unit.MassMetricTon {
		t.Errorf("Sum must keep receiver units, got %s", sum.Units())
	}
	assertEqual(t, sum.In(unit.MassKilogram), 1500, 1e-9, "sum")

	diff, _ := a.Sub(b)
	assertEqual(t, diff.In(unit.MassKilogram), 500, 1e-9, "difference")

	_, err = a.Add(unit.MustCreate(1, unit.DistanceMeter))
	if !errors.Is(err, unit.ErrDimension) {
		t.Errorf("mass + length must fail, got %v", err)
	}

	v := unit.MustCreate(100, unit.DistanceKilometer).Div(unit.MustCreate(2, unit.TimeHour))
	if !v.Dimension().Matches(unit.Velocity) {
		t.Errorf("Length/time must be velocity, got %s", v.Dimension())
	}
	assertEqual(t, v.In(unit.VelocityKMH), 50, 1e-9, "velocity")

	w := unit.MustCreate(1000, unit.MassKilogram).Mul(unit.MustCreate(unit.StandardGravity, unit.AccelerationMPS2))
	if err := w.Check("W", unit.Force); err != nil {
		t.Errorf("Mass*acceleration must be force: %v", err)
	}
	assertEqual(t, w.In(unit.ForceNewton), 9806.65, 1e-9, "weight")

	ratio := unit.MustCreate(1, unit.DistanceNauticalMile).Div(unit.MustCreate(1852, unit.DistanceMeter))
	if !ratio.Dimension().Matches(unit.Dimensionless) {
		t.Errorf("Length/length must be dimensionless, got %s", ratio.Dimension())
	}
	assertEqual(t, ratio.SI(), 1, 1e-12, "ratio")

	tsfc := unit.MustCreate(17, unit.TsfcMgPerNs)
	if !tsfc.Mul(unit.MustCreate(1, unit.ForceNewton)).Dimension().Matches(unit.MassFlow) {
		t.Errorf("TSFC*thrust must be a mass flow")
	}
}

func TestCompare(t *testing.T) {
	a := unit.MustCreate(1, unit.DistanceNauticalMile)
	b := unit.MustCreate(1, unit.DistanceKilometer)
	if c, err := a.Compare(b); err != nil || c != 1 {
		t.Errorf("1 nmi must be greater than 1 km (%d, %v)", c, err)
	}
	if _, err := a.Compare(unit.MustCreate(1, unit.TimeSecond)); err == nil {
		t.Errorf("Comparison of length and time must fail")
	}
	if a.Neg().Sign() != -1 || a.Sign() != 1 || a.Scale(0).Sign() != 0 || !a.Scale(0).IsZero() {
		t.Errorf("Sign failed")
	}
}

func TestRequire(t *testing.T) {
	err := unit.Require(
		unit.Expect("R", unit.MustCreate(1, unit.DistanceKilometer), unit.Length),
		unit.Expect("m_after_cruise", unit.MustCreate(800, unit.VelocityKMH), unit.Mass),
		unit.Expect("V", unit.MustCreate(1, unit.MassKilogram), unit.Velocity),
	)
	var de *unit.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("Expected dimension error, got %v", err)
	}
	if de.Parameter != "m_after_cruise" {
		t.Errorf("First mismatching parameter must be reported, got %s", de.Parameter)
	}
	if de.Error() != "Quantity: parameter m_after_cruise must be mass, got velocity" {
		t.Errorf("Unexpected message: %s", de.Error())
	}
}

func TestString(t *testing.T) {
	d := unit.MustCreate(2000, unit.DistanceNauticalMile).MustConvert(unit.DistanceKilometer)
	if d.String() != "3704.000km" {
		t.Errorf("To string failed: %s", d.String())
	}
	m := unit.MustCreate(-50, unit.TemperatureCelsius)
	if m.String() != "-50.00degC" {
		t.Errorf("To string failed: %s", m.String())
	}
}

func TestRegistry(t *testing.T) {
	if unit.DefaultRegistry() != unit.DefaultRegistry() {
		t.Errorf("Registry must be created once")
	}
	names := unit.DefaultRegistry().Units(unit.Mass)
	expected := []string{"g", "kg", "lb", "long_ton", "mg", "short_ton", "t"}
	if len(names) != len(expected) {
		t.Fatalf("Unexpected mass units %v", names)
	}
	for i := range names {
		if names[i] != expected[i] {
			t.Errorf("Unexpected mass units %v", names)
			break
		}
	}
	d, err := unit.DefaultRegistry().DimensionOf("mg/(N·s)")
	if err != nil || !d.Matches(unit.Tsfc) {
		t.Errorf("TSFC unit must have TSFC dimension (%v)", err)
	}
}
