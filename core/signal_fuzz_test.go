package core

import (
	"math"
	"testing"
)

// FuzzSeasonalPattern checks the seasonal shape stays bounded and finite
// over its whole domain.
func FuzzSeasonalPattern(f *testing.F) {
	f.Add(0.0)
	f.Add(0.2)
	f.Add(0.4)
	f.Add(0.999)

	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || x < 0 || x >= 1 {
			t.Skip()
		}

		y := SeasonalPattern(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Errorf("SeasonalPattern(%v) = %v, want finite", x, y)
		}
		if y < -1 || y > 1 {
			t.Errorf("SeasonalPattern(%v) = %v, want within [-1, 1]", x, y)
		}
	})
}
