package conditions

import "math"

const maxScore = 100.0

// Score rates a reading from 0 to 100 by summing four independent factor
// buckets. Each factor awards the first matching bracket only, so a value
// inside the tight range never also collects the looser range's points.
// The function is pure: two identical readings always score identically,
// and only wave height, wave period, wind speed and the swell pair matter.
func Score(r Reading) float64 {
	score := 0.0

	// Wave height, optimal 3-8 ft.
	switch {
	case r.WaveHeight >= 3.0 && r.WaveHeight <= 8.0:
		score += 30
	case r.WaveHeight >= 2.0 && r.WaveHeight <= 10.0:
		score += 20
	default:
		score += 10
	}

	// Wave period, optimal 10-16 s.
	switch {
	case r.WavePeriod >= 10.0 && r.WavePeriod <= 16.0:
		score += 25
	case r.WavePeriod >= 8.0 && r.WavePeriod <= 18.0:
		score += 15
	default:
		score += 5
	}

	// Wind, lighter is better.
	switch {
	case r.WindSpeed <= 10.0:
		score += 25
	case r.WindSpeed <= 15.0:
		score += 15
	default:
		score += 5
	}

	// Swell consistency.
	if r.SwellHeight >= 3.0 && r.SwellPeriod >= 10.0 {
		score += 20
	} else {
		score += 10
	}

	return math.Min(score, maxScore)
}
