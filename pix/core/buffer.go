package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Widen converts 8-bit samples into dst as normalized float64 values in [0, 1].
// dst is resized with EnsureLen and returned.
func Widen(dst []float64, src []uint8) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = Normalize(v)
	}
	return dst
}

// Narrow converts normalized values back to 8-bit samples, scaling by 255,
// rounding and clamping. It writes min(len(dst), len(src)) values and returns
// the count.
func Narrow(dst []uint8, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = ToUint8(src[i] * 255)
	}
	return n
}
