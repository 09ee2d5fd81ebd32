package mds

import "math"

// Stress returns the Kruskal stress-1 of the 2D embedding coords against
// the original distance matrix d: sqrt(sum((d_ij-e_ij)^2) / sum(d_ij^2)),
// a standard goodness-of-fit figure for the SPEC_FULL.md summary field
// spec.md section 6 names but does not define.
func Stress(d [][]float64, coords []Coordinate) float64 {
	n := len(coords)
	var num, den float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := coords[i].X - coords[j].X
			dy := coords[i].Y - coords[j].Y
			e := math.Sqrt(dx*dx + dy*dy)
			diff := d[i][j] - e
			num += diff * diff
			den += d[i][j] * d[i][j]
		}
	}
	if den == 0 {
		return 0
	}
	return math.Sqrt(num / den)
}

// VarianceExplained returns the fraction of total absolute eigenvalue mass
// captured by the top two eigenvalues.
func VarianceExplained(all []float64) float64 {
	var total, top2 float64
	for i, v := range all {
		total += math.Abs(v)
		if i < 2 {
			top2 += math.Abs(v)
		}
	}
	if total == 0 {
		return 0
	}
	return top2 / total
}
