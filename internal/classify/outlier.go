package classify

import (
	"math"
	"sort"

	"cleantab/domain/profile"
)

// DetectOutliers counts values beyond the 1.5-IQR fences of a numeric
// sequence. Quartiles ignore missing cells; the counting comparisons never
// match NaN, so missing cells never count as outliers. The reported
// percentage divides by the full sequence length, missing cells included.
// The stats are absent (ok false) when no value falls outside the fences.
func DetectOutliers(values []float64) (st profile.OutlierStats, ok bool, err error) {
	clean, err := dropMissing(values)
	if err != nil {
		return profile.OutlierStats{}, false, err
	}

	sort.Float64s(clean)
	q25 := quantile(clean, 0.25)
	q75 := quantile(clean, 0.75)
	fence := 1.5 * (q75 - q25)

	lower, upper := 0, 0
	for _, v := range values {
		if v < q25-fence {
			lower++
		}
		if v > q75+fence {
			upper++
		}
	}
	total := lower + upper
	if total == 0 {
		return profile.OutlierStats{}, false, nil
	}

	return profile.OutlierStats{
		Lower:      lower,
		Upper:      upper,
		Total:      total,
		Percentage: round2(float64(total) * 100 / float64(len(values))),
	}, true, nil
}

// quantile interpolates linearly between the two order statistics around
// the target position, matching the reference percentile definition. The
// input must be sorted and non-empty.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
