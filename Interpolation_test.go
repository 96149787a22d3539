package go_jetfuelburn_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_jetfuelburn"
)

func TestInterpolate(t *testing.T) {
	xs := []float64{0, 125, 250, 500}
	ys := []float64{0, 1000, 1800, 3000}

	for _, c := range []struct{ x, y float64 }{
		{0, 0}, {62.5, 500}, {125, 1000}, {200, 1480}, {500, 3000},
	} {
		y, err := go_jetfuelburn.Interpolate(c.x, xs, ys)
		if err != nil {
			t.Fatal(err)
		}
		assertEqual(t, y, c.y, 1e-9, "interpolated value")
	}

	_, err := go_jetfuelburn.Interpolate(-0.1, xs, ys)
	assertDomainError(t, err, "below the table")
	_, err = go_jetfuelburn.Interpolate(500.1, xs, ys)
	assertDomainError(t, err, "above the table")
}

func TestInterpolationTable(t *testing.T) {
	table, err := go_jetfuelburn.CreateInterpolationTable([]float64{3, 1, 2}, []float64{30, 10, 20})
	if err != nil {
		t.Fatal(err)
	}
	if table.Min() != 1 || table.Max() != 3 {
		t.Errorf("Table must be sorted (%f/%f)", table.Min(), table.Max())
	}
	y, _ := table.At(2.5)
	assertEqual(t, y, 25, 1e-12, "unsorted input")

	if _, err = go_jetfuelburn.CreateInterpolationTable([]float64{1, 1}, []float64{1, 2}); err == nil {
		t.Errorf("Duplicate arguments must fail")
	}
	if _, err = go_jetfuelburn.CreateInterpolationTable([]float64{1}, []float64{1}); err == nil {
		t.Errorf("A single point must fail")
	}
	if _, err = go_jetfuelburn.CreateInterpolationTable([]float64{1, 2}, []float64{1}); err == nil {
		t.Errorf("Length mismatch must fail")
	}
}
