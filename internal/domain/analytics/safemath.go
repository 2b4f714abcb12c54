package analytics

// SafeRatio returns numerator/denominator, or 0 when the denominator is
// zero. A narrow or empty filter selection makes a zero denominator an
// ordinary input, so the fallback is policy rather than error handling.
func SafeRatio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// SafeMean returns the arithmetic mean of values, or 0 for an empty slice.
func SafeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
