package thermal

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestFWHMVelocity(t *testing.T) {
	cases := []struct {
		name    string
		massAMU float64
		tempK   float64
		want    float64
	}{
		{"hydrogen 1e4 K", 1.008, 1e4, 21.38673805723689},
		{"iron 2e6 K", 55.845, 2e6, 40.63475695748416},
		{"oxygen 1e4 K", 15.999, 1e4, 5.36819640789256},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FWHMVelocity(tc.massAMU, tc.tempK)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !almostEqual(got, tc.want, 1e-9) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFWHMVelocityScalesWithSqrtTemperature(t *testing.T) {
	a, err := FWHMVelocity(55.845, 1e6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := FWHMVelocity(55.845, 4e6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(b/a, 2, 1e-12) {
		t.Fatalf("ratio=%v, want 2", b/a)
	}
}

func TestLogTemperature(t *testing.T) {
	lin, err := FWHMVelocity(55.845, math.Pow(10, 6.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logv, err := FWHMVelocity(55.845, 6.2, WithLogTemperature())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(lin, logv, 1e-12) {
		t.Fatalf("linear %v != log %v", lin, logv)
	}
}

func TestFWHM(t *testing.T) {
	// H-alpha at 6562.8 A from hydrogen at 1e4 K.
	got, err := FWHM(6562.8, 1.008, 1e4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(got, 0.4681801719042387, 1e-12) {
		t.Fatalf("got %v", got)
	}
}

func TestMeanSpeed(t *testing.T) {
	got, err := MeanSpeed(1.008, 1e4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(got, 14.49295298620588, 1e-9) {
		t.Fatalf("got %v", got)
	}

	// Mean speed is always below the FWHM velocity for the same ion.
	fwhm, err := FWHMVelocity(1.008, 1e4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got >= fwhm {
		t.Fatalf("mean %v >= fwhm %v", got, fwhm)
	}
}

func TestUnitConversionRoundTrip(t *testing.T) {
	const wavelength = 195.119

	width := VelocityToWidth(36.17284510411218, wavelength)
	if !almostEqual(width, 0.023542985073591358, 1e-15) {
		t.Fatalf("width=%v", width)
	}

	back := WidthToVelocity(width, wavelength)
	if !almostEqual(back, 36.17284510411218, 1e-9) {
		t.Fatalf("velocity=%v", back)
	}
}

func TestWidthToVelocityZeroWavelength(t *testing.T) {
	if v := WidthToVelocity(1, 0); v != 0 {
		t.Fatalf("got %v, want 0", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	if _, err := FWHMVelocity(0, 1e4); err == nil {
		t.Fatal("expected error for zero mass")
	}

	if _, err := FWHMVelocity(-1, 1e4); err == nil {
		t.Fatal("expected error for negative mass")
	}

	if _, err := FWHMVelocity(1, 0); err == nil {
		t.Fatal("expected error for zero temperature")
	}

	if _, err := FWHMVelocity(1, math.NaN()); err == nil {
		t.Fatal("expected error for NaN temperature")
	}

	if _, err := FWHM(0, 1, 1e4); err == nil {
		t.Fatal("expected error for zero wavelength")
	}

	if _, err := MeanSpeed(1, -5); err == nil {
		t.Fatal("expected error for negative temperature")
	}
}

func TestLogTemperatureZeroIsOneKelvin(t *testing.T) {
	// log10(T) = 0 means T = 1 K, which is valid.
	got, err := FWHMVelocity(1.008, 0, WithLogTemperature())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := FWHMVelocity(1.008, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
