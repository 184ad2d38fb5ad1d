package vecmath

// MulAddBlock computes dst[i] += a[i] * b[i] (multiply-accumulate).
// dst may alias a or b.
func MulAddBlock(dst, a, b []float32) {
	checkLen3(dst, a, b)

	if useWide(len(dst)) {
		mulAddWide(dst, a, b)
		return
	}

	for i := range dst {
		dst[i] += a[i] * b[i]
	}
}

func mulAddWide(dst, a, b []float32) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] += a[i] * b[i]
		dst[i+1] += a[i+1] * b[i+1]
		dst[i+2] += a[i+2] * b[i+2]
		dst[i+3] += a[i+3] * b[i+3]
	}

	for ; i < len(dst); i++ {
		dst[i] += a[i] * b[i]
	}
}
