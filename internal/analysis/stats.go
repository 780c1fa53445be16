package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PairedTTest computes the paired-samples t statistic and two-sided p-value
// for x against y. The third return is false when the test is undefined
// (fewer than two pairs, mismatched lengths, or zero variance of the
// differences).
func PairedTTest(x, y []float64) (float64, float64, bool) {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0, 0, false
	}

	d := make([]float64, n)
	for i := range x {
		d[i] = x[i] - y[i]
	}

	sd := stat.StdDev(d, nil)
	if sd == 0 {
		return 0, 0, false
	}

	t := stat.Mean(d, nil) / (sd / math.Sqrt(float64(n)))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p := 2 * dist.CDF(-math.Abs(t))

	return t, p, true
}

// MannWhitneyU computes the Mann-Whitney U statistic for x and a two-sided
// p-value using the tie-corrected normal approximation with continuity
// correction. The third return is false when either sample is empty.
func MannWhitneyU(x, y []float64) (float64, float64, bool) {
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return 0, 0, false
	}

	type obs struct {
		v     float64
		fromX bool
	}

	all := make([]obs, 0, n1+n2)
	for _, v := range x {
		all = append(all, obs{v: v, fromX: true})
	}

	for _, v := range y {
		all = append(all, obs{v: v})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].v < all[j].v })

	// Average ranks within tie groups; track the tie correction term.
	var rankSumX, tieTerm float64

	n := len(all)
	for i := 0; i < n; {
		j := i
		for j < n && all[j].v == all[i].v {
			j++
		}

		ties := float64(j - i)
		avgRank := float64(i+j+1) / 2 // ranks are 1-based

		for k := i; k < j; k++ {
			if all[k].fromX {
				rankSumX += avgRank
			}
		}

		tieTerm += ties*ties*ties - ties

		i = j
	}

	u := rankSumX - float64(n1*(n1+1))/2
	mu := float64(n1*n2) / 2

	fn := float64(n)
	sigma2 := float64(n1*n2) / 12 * ((fn + 1) - tieTerm/(fn*(fn-1)))
	if sigma2 <= 0 {
		// Every observation tied; no evidence against the null.
		return u, 1, true
	}

	z := (math.Abs(u-mu) - 0.5) / math.Sqrt(sigma2)
	if z < 0 {
		z = 0
	}

	p := 2 * (1 - distuv.UnitNormal.CDF(z))
	if p > 1 {
		p = 1
	}

	return u, p, true
}
