package reducedorder_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn/bmath/unit"
	"github.com/gehtsoft-usa/go_jetfuelburn/log"
	"github.com/gehtsoft-usa/go_jetfuelburn/reducedorder"
)

//The bundled coefficients are placeholders, the expected values check the
//evaluation of the polynomial c0 + c1·R + c2·R² only
func TestSeymour(t *testing.T) {
	fuel, err := reducedorder.Seymour.CalculateFuelConsumption("B739", km(1000))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, fuel.In(unit.MassKilogram), 3455, 1e-6, "B739 1000 km")

	fuel, err = reducedorder.Seymour.CalculateFuelConsumption("B739", km(0))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, fuel.In(unit.MassKilogram), 760, 1e-9, "B739 zero range")

	c, err := reducedorder.Seymour.Coefficients("B739")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, c.MaxRange.In(unit.DistanceKilometer), 5900, 1e-9, "max range")

	_, err = reducedorder.Seymour.CalculateFuelConsumption("B739", km(-10))
	assertDomainError(t, err, "negative range")
}

func TestSeymourMaxRangeWarning(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Default()
	log.SetDefault(log.NewWriter(slog.LevelWarn, &buf, ""))
	defer log.SetDefault(saved)

	fuel, err := reducedorder.Seymour.CalculateFuelConsumption("B739", km(6000))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, fuel.In(unit.MassKilogram), 18580, 1e-6, "B739 6000 km")
	if !strings.Contains(buf.String(), "maximum range") || !strings.Contains(buf.String(), "B739") {
		t.Errorf("Expected a warning, got %q", buf.String())
	}

	buf.Reset()
	if _, err := reducedorder.Seymour.CalculateFuelConsumption("B739", km(5000)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Unexpected warning %q", buf.String())
	}
}
