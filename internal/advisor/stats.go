package advisor

import (
	"math"
	"time"
)

// computeStats computes the size and age distribution of the collected
// set. Ages are measured in seconds from modification time to now.
// With one record or zero variance the standard deviation is defined
// as 1.0 so downstream z-scores stay finite.
func computeStats(records []rawFile, now time.Time) DistributionStats {
	sizes := make([]float64, len(records))
	ages := make([]float64, len(records))
	for i, r := range records {
		sizes[i] = float64(r.size)
		ages[i] = now.Sub(r.mtime).Seconds()
	}

	return DistributionStats{
		SizeMean:   mean(sizes),
		SizeStdDev: flooredStdDev(sizes),
		AgeMean:    mean(ages),
		AgeStdDev:  flooredStdDev(ages),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// flooredStdDev returns the sample standard deviation, floored to 1.0
// for samples of size <= 1 or with zero variance.
func flooredStdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 1.0
	}

	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}

	sd := math.Sqrt(sumSq / float64(len(values)-1))
	if sd == 0 {
		return 1.0
	}
	return sd
}
