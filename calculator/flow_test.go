package calculator

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-3

func TestReynoldsNumber(t *testing.T) {
	re := ReynoldsNumber(1000, 0.00159, 0.05, 0.000895)
	if !scalar.EqualWithinRel(re, 88.8268, tol) {
		t.Fatalf("re = %v, want 88.83", re)
	}
}

func TestIsLaminar(t *testing.T) {
	cases := []struct {
		re   float64
		want bool
	}{
		{1, true},
		{1999.999, true},
		{2000, false},
		{2000.001, false},
		{1e6, false},
	}
	for _, c := range cases {
		if got := IsLaminar(c.re); got != c.want {
			t.Errorf("IsLaminar(%v) = %v, want %v", c.re, got, c.want)
		}
	}
}

func TestFrictionFactorDispatch(t *testing.T) {
	const roughness, diameter = 0.03, 0.0159

	below := math.Nextafter(LaminarThreshold, 0)
	if got := FrictionFactor(below, roughness, diameter); got != 64/below {
		t.Errorf("below threshold f = %v, want exactly %v", got, 64/below)
	}

	at := FrictionFactor(LaminarThreshold, roughness, diameter)
	if at != TurbulentFrictionFactor(LaminarThreshold, roughness, diameter) {
		t.Errorf("Re=2000 must use the turbulent correlation, got %v", at)
	}
	if !scalar.EqualWithinRel(at, 0.0080108, tol) {
		t.Errorf("turbulent f at Re=2000 = %v, want 0.00801", at)
	}
	// the jump across the boundary is part of the correlation
	if math.Abs(at-64/below) < 0.02 {
		t.Errorf("expected a discontinuity at Re=2000, laminar=%v turbulent=%v", 64/below, at)
	}

	above := FrictionFactor(2000.5, roughness, diameter)
	if above != TurbulentFrictionFactor(2000.5, roughness, diameter) {
		t.Errorf("above threshold f = %v not turbulent", above)
	}
}

func TestTurbulentFrictionFactor(t *testing.T) {
	f := TurbulentFrictionFactor(8882.681564245811, 0.03, 0.0159)
	if !scalar.EqualWithinRel(f, 0.1120369, tol) {
		t.Fatalf("f = %v, want 0.11204", f)
	}
}

func TestPrandtlNumber(t *testing.T) {
	pr := PrandtlNumber(0.000895, 4187, 401)
	if !scalar.EqualWithinRel(pr, 0.0093450, tol) {
		t.Fatalf("pr = %v", pr)
	}
}

func TestHeadLossAndPressure(t *testing.T) {
	h := HeadLoss(0.7205031446540879, 0.2, 0.00159, 0.05, 9.81)
	if !scalar.EqualWithinRel(h, 0.0115481, tol) {
		t.Fatalf("head loss = %v", h)
	}
	p := PressureLoss(1000, 9.81, h)
	if p >= 0 {
		t.Fatalf("pressure loss must be negative, got %v", p)
	}
	if p != -1000*9.81*h {
		t.Fatalf("pressure loss = %v, want %v", p, -1000*9.81*h)
	}

	horizontal := HeadLoss(0.7205031446540879, 0.2, 0.00159, 0.05, 0.01)
	if horizontal <= h {
		t.Fatalf("horizontal head loss %v should exceed vertical %v", horizontal, h)
	}
}

func TestHeatTransferCoefficient(t *testing.T) {
	htc := HeatTransferCoefficient(88.82681564245812, 0.00934504987531172, 401, 0.00159)
	if !scalar.EqualWithinRel(htc, 32399.85, tol) {
		t.Fatalf("htc = %v", htc)
	}
}
