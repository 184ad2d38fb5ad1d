package vecmath

// Power computes dst[i] = re[i]*re[i] + im[i]*im[i].
func Power(dst, re, im []float32) {
	checkLen3(dst, re, im)

	if useWide(len(dst)) {
		powerWide(dst, re, im)
		return
	}

	for i := range dst {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}

func powerWide(dst, re, im []float32) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = re[i]*re[i] + im[i]*im[i]
		dst[i+1] = re[i+1]*re[i+1] + im[i+1]*im[i+1]
		dst[i+2] = re[i+2]*re[i+2] + im[i+2]*im[i+2]
		dst[i+3] = re[i+3]*re[i+3] + im[i+3]*im[i+3]
	}

	for ; i < len(dst); i++ {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}
