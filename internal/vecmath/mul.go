package vecmath

// MulBlock computes dst[i] = a[i] * b[i]. dst may alias a or b.
func MulBlock(dst, a, b []float32) {
	checkLen3(dst, a, b)

	if useWide(len(dst)) {
		mulWide(dst, a, b)
		return
	}

	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float32) {
	checkLen2(dst, src)
	MulBlock(dst, dst, src)
}

// ScaleBlock computes dst[i] = src[i] * s. dst may alias src.
func ScaleBlock(dst, src []float32, s float32) {
	checkLen2(dst, src)

	if useWide(len(dst)) {
		scaleWide(dst, src, s)
		return
	}

	for i := range dst {
		dst[i] = src[i] * s
	}
}

// ScaleBlockInPlace computes dst[i] *= s.
func ScaleBlockInPlace(dst []float32, s float32) {
	ScaleBlock(dst, dst, s)
}

func mulWide(dst, a, b []float32) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}

	for ; i < len(dst); i++ {
		dst[i] = a[i] * b[i]
	}
}

func scaleWide(dst, src []float32, s float32) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = src[i] * s
		dst[i+1] = src[i+1] * s
		dst[i+2] = src[i+2] * s
		dst[i+3] = src[i+3] * s
	}

	for ; i < len(dst); i++ {
		dst[i] = src[i] * s
	}
}
