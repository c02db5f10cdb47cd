package common

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 when flip is set, 1 otherwise. Used for mirror scale factors.
func Sign(flip bool) float64 {
	if flip {
		return -1
	}
	return 1
}
