package common

// Lerp is used by presentation code only; simulation state never goes through floats.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SaturatingAdd adds delta to v and clamps the result to [0, ceiling].
func SaturatingAdd(v, delta, ceiling int) int {
	return Clamp(v+delta, 0, ceiling)
}

// SaturatingSub subtracts delta from v, never going below zero.
func SaturatingSub(v, delta int) int {
	if delta >= v {
		return 0
	}
	return v - delta
}
