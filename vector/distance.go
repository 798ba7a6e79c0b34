package vector

import (
	"math"

	"github.com/viant/vec/search"
)

// Metric names a supported distance function.
type Metric string

const (
	MetricCosine Metric = "cos"
	MetricL2     Metric = "l2"
)

// Distance computes the distance between a and b for the given metric.
func Distance(m Metric, a, b *Vector) (float64, error) {
	switch m {
	case MetricCosine:
		return CosineDistance(a, b)
	case MetricL2:
		return L2Distance(a, b)
	default:
		return 0, newError(ErrInvalidFormat, "unsupported metric %q", string(m))
	}
}

func checkOperands(a, b *Vector) error {
	if a.Dims() != b.Dims() {
		return newError(ErrDimensionMismatch, "vectors must have the same length")
	}
	if a.typ != b.typ {
		return newError(ErrTypeMismatch, "vectors must have the same type")
	}
	return nil
}

// CosineDistance returns 1 - cos(a, b), in [0, 2], computed in float64
// for both element types. The result for float32 vectors is rounded to
// float32. A zero-magnitude operand or a non-finite result is an error.
func CosineDistance(a, b *Vector) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	if a.typ == TypeFloat64 {
		return cosineDistance(a.f64, b.f64)
	}
	d, err := cosineDistance(a.f32, b.f32)
	if err != nil {
		return 0, err
	}
	return float64(float32(d)), nil
}

func cosineDistance[T float32 | float64](a, b []T) (float64, error) {
	dot, na2, nb2 := cosineSums(a, b, 1, 1)
	if !isFinite(dot, na2, nb2) || (na2 == 0 && maxAbs(a) != 0) || (nb2 == 0 && maxAbs(b) != 0) {
		// squares left the float64 range; cosine is scale invariant
		dot, na2, nb2 = cosineSums(a, b, maxAbs(a), maxAbs(b))
	}
	if na2 == 0 || nb2 == 0 {
		return 0, newError(ErrDivisionByZero, "cosine distance with zero-magnitude vector")
	}
	denom := math.Sqrt(na2 * nb2)
	if math.IsInf(denom, 0) || denom == 0 {
		denom = math.Sqrt(na2) * math.Sqrt(nb2)
	}
	d := 1 - dot/denom
	if !isFinite(d) {
		return 0, newError(ErrNonFinite, "cosine distance is not a finite number")
	}
	return d, nil
}

func cosineSums[T float32 | float64](a, b []T, scaleA, scaleB float64) (dot, na2, nb2 float64) {
	for i := range a {
		va := float64(a[i]) / scaleA
		vb := float64(b[i]) / scaleB
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	return dot, na2, nb2
}

func maxAbs[T float32 | float64](v []T) float64 {
	var m float64
	for _, f := range v {
		if a := math.Abs(float64(f)); a > m || math.IsNaN(a) {
			m = a
		}
	}
	return m
}

func isFinite(values ...float64) bool {
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// L2Distance returns the Euclidean distance between a and b. Float32 vectors
// are computed in float32 and widened to float64 when that overflows.
func L2Distance(a, b *Vector) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	if a.typ == TypeFloat64 {
		return l2Distance(a.f64, b.f64), nil
	}
	if len(a.f32) == 0 {
		return 0, nil
	}
	d := search.Float32s(a.f32).EuclideanDistance(b.f32)
	if math.IsInf(float64(d), 0) {
		return l2Distance(a.f32, b.f32), nil
	}
	return float64(d), nil
}

func l2Distance[T float32 | float64](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
