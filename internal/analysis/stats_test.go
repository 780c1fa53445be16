package analysis

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func TestPairedTTest(t *testing.T) {
	// Differences are [1, 2, 3]: mean 2, sd 1, t = 2*sqrt(3).
	x := []float64{2, 4, 6}
	y := []float64{1, 2, 3}

	tStat, p, ok := PairedTTest(x, y)
	if !ok {
		t.Fatal("PairedTTest should be defined")
	}

	approx(t, "t", tStat, 3.4641, 1e-3)
	approx(t, "p", p, 0.0742, 1e-3)
}

func TestPairedTTest_Symmetry(t *testing.T) {
	x := []float64{10, 20, 15, 30}
	y := []float64{12, 18, 20, 25}

	t1, p1, ok1 := PairedTTest(x, y)
	t2, p2, ok2 := PairedTTest(y, x)

	if !ok1 || !ok2 {
		t.Fatal("both directions should be defined")
	}

	approx(t, "t sign flip", t1, -t2, 1e-12)
	approx(t, "p equal", p1, p2, 1e-12)
}

func TestPairedTTest_Undefined(t *testing.T) {
	if _, _, ok := PairedTTest([]float64{1}, []float64{2}); ok {
		t.Error("single pair should be undefined")
	}

	if _, _, ok := PairedTTest([]float64{1, 2}, []float64{2}); ok {
		t.Error("mismatched lengths should be undefined")
	}

	if _, _, ok := PairedTTest([]float64{3, 4}, []float64{1, 2}); ok {
		t.Error("constant differences should be undefined")
	}
}

func TestMannWhitneyU(t *testing.T) {
	// Complete separation: U of x is 0.
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}

	u, p, ok := MannWhitneyU(x, y)
	if !ok {
		t.Fatal("MannWhitneyU should be defined")
	}

	if u != 0 {
		t.Errorf("U = %v, want 0", u)
	}

	// Normal approximation with continuity correction:
	// z = (4.5-0.5)/sqrt(5.25), p = 2*(1-Phi(z)).
	approx(t, "p", p, 0.0809, 1e-3)
}

func TestMannWhitneyU_Ties(t *testing.T) {
	x := []float64{1.5, 2.0, 2.0}
	y := []float64{2.0, 2.5}

	u, p, ok := MannWhitneyU(x, y)
	if !ok {
		t.Fatal("MannWhitneyU should be defined")
	}

	// Ranks: 1.5 -> 1, the three 2.0 share rank 3, 2.5 -> 5.
	// R1 = 1 + 3 + 3 = 7, U = 7 - 6 = 1.
	if u != 1 {
		t.Errorf("U = %v, want 1", u)
	}

	if p < 0 || p > 1 {
		t.Errorf("p = %v out of range", p)
	}
}

func TestMannWhitneyU_AllTied(t *testing.T) {
	_, p, ok := MannWhitneyU([]float64{2, 2}, []float64{2, 2})
	if !ok {
		t.Fatal("should be defined")
	}

	if p != 1 {
		t.Errorf("p = %v, want 1 for fully tied samples", p)
	}
}

func TestMannWhitneyU_Undefined(t *testing.T) {
	if _, _, ok := MannWhitneyU(nil, []float64{1}); ok {
		t.Error("empty sample should be undefined")
	}
}
