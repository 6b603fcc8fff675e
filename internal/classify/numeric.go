package classify

import (
	"math"

	"github.com/montanaflynn/stats"

	"cleantab/domain/core"
	"cleantab/domain/table"
)

// SuggestType picks the narrowest storage type whose range covers the
// sequence, and returns TypeNone when that type is the current one. Missing
// cells are marked NaN and ignored; a single real value is enough to
// classify. The sequence fails with InvalidInput when it is empty or
// entirely missing.
func SuggestType(values []float64, current table.NumericType) (table.NumericType, error) {
	clean, err := dropMissing(values)
	if err != nil {
		return table.TypeNone, err
	}

	min, _ := stats.Min(clean)
	max, _ := stats.Max(clean)

	var family []table.NumericType
	if allIntegral(clean) {
		if min >= 0 {
			family = table.UnsignedWidths
		} else {
			family = table.SignedWidths
		}
	} else {
		family = table.FloatWidths
	}

	upper, lower := widthSearch(family, min, max)
	if upper < 0 || lower < 0 {
		// A value exceeds every integer width. Retry over the wide float
		// family only.
		family = table.OverflowFloats
		upper, lower = widthSearch(family, min, max)
		if upper < 0 || lower < 0 {
			return table.TypeNone, core.NewInvalidInput("values exceed the float64 range")
		}
	}

	// The two searches run independently per width index; the result is the
	// larger of the two first hits, not the first width satisfying both at
	// once. Existing outputs depend on this tie-break.
	idx := upper
	if lower > idx {
		idx = lower
	}

	target := family[idx]
	if target == current {
		return table.TypeNone, nil
	}
	return target, nil
}

// widthSearch returns the first width index whose max covers max and the
// first whose min covers min, each -1 when no width qualifies.
func widthSearch(family []table.NumericType, min, max float64) (upper, lower int) {
	upper, lower = -1, -1
	for i, t := range family {
		tmin, tmax := t.Bounds()
		if upper < 0 && max <= tmax {
			upper = i
		}
		if lower < 0 && min >= tmin {
			lower = i
		}
	}
	return upper, lower
}

// dropMissing filters NaN markers out of the sequence, failing with
// InvalidInput when nothing remains.
func dropMissing(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, core.NewInvalidInput("numeric sequence is empty")
	}
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil, core.NewInvalidInput("numeric sequence has no non-missing values")
	}
	return clean, nil
}

func allIntegral(values []float64) bool {
	for _, v := range values {
		if math.Mod(v, 1) != 0 {
			return false
		}
	}
	return true
}
