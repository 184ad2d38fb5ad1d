package vecmath

// Sum returns the sum of all elements of x.
//
// The wide kernel accumulates four independent lanes that are combined
// pairwise at the end, matching how a horizontal vector add behaves. The
// result may therefore differ from the strict left-to-right scalar sum by
// reassociation error, which stays well inside the package tolerance.
func Sum(x []float32) float32 {
	if useWide(len(x)) {
		return sumWide(x)
	}

	var sum float32
	for _, v := range x {
		sum += v
	}

	return sum
}

// DotProduct returns the inner product of a and b.
func DotProduct(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("vecmath: slice length mismatch")
	}

	if useWide(len(a)) {
		return dotWide(a, b)
	}

	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

func sumWide(x []float32) float32 {
	var s0, s1, s2, s3 float32

	i := 0
	for ; i <= len(x)-4; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}

	sum := (s0 + s2) + (s1 + s3)
	for ; i < len(x); i++ {
		sum += x[i]
	}

	return sum
}

func dotWide(a, b []float32) float32 {
	var s0, s1, s2, s3 float32

	i := 0
	for ; i <= len(a)-4; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}

	sum := (s0 + s2) + (s1 + s3)
	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}
