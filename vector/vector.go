package vector

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Vector is an immutable, ordered sequence of floating-point elements that
// share one element Type. Exactly one of f32/f64 is used, selected by typ.
type Vector struct {
	typ Type
	f32 []float32
	f64 []float64
}

// New32 returns a float32 vector holding a copy of values.
func New32(values ...float32) *Vector {
	return &Vector{typ: TypeFloat32, f32: slices.Clone(values)}
}

// New64 returns a float64 vector holding a copy of values.
func New64(values ...float64) *Vector {
	return &Vector{typ: TypeFloat64, f64: slices.Clone(values)}
}

// Type returns the element type.
func (v *Vector) Type() Type { return v.typ }

// Dims returns the number of elements.
func (v *Vector) Dims() int {
	if v.typ == TypeFloat64 {
		return len(v.f64)
	}
	return len(v.f32)
}

// Float32s returns a copy of the elements converted to float32.
func (v *Vector) Float32s() []float32 {
	if v.typ == TypeFloat32 {
		return slices.Clone(v.f32)
	}
	out := make([]float32, len(v.f64))
	for i, f := range v.f64 {
		out[i] = narrow(f)
	}
	return out
}

// Float64s returns a copy of the elements widened to float64.
func (v *Vector) Float64s() []float64 {
	if v.typ == TypeFloat64 {
		return slices.Clone(v.f64)
	}
	out := make([]float64, len(v.f32))
	for i, f := range v.f32 {
		out[i] = float64(f)
	}
	return out
}

// Convert returns v re-tagged as typ. Narrowing rounds each element to the
// nearest float32 and saturates out-of-range magnitudes.
func (v *Vector) Convert(typ Type) *Vector {
	if v.typ == typ {
		return v
	}
	if typ == TypeFloat64 {
		return &Vector{typ: TypeFloat64, f64: v.Float64s()}
	}
	return &Vector{typ: TypeFloat32, f32: v.Float32s()}
}

// Equal reports whether both vectors have the same type and bit-identical
// elements.
func (v *Vector) Equal(o *Vector) bool {
	if v.typ != o.typ || v.Dims() != o.Dims() {
		return false
	}
	if v.typ == TypeFloat64 {
		for i := range v.f64 {
			if math.Float64bits(v.f64[i]) != math.Float64bits(o.f64[i]) {
				return false
			}
		}
		return true
	}
	for i := range v.f32 {
		if math.Float32bits(v.f32[i]) != math.Float32bits(o.f32[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical text form, e.g. "[1,2,3]". Float32 elements
// use 6 significant digits, float64 elements the shortest representation
// that round-trips.
func (v *Vector) String() string {
	var sb strings.Builder
	buf := make([]byte, 0, 24)
	sb.WriteByte('[')
	for i := 0; i < v.Dims(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		buf = buf[:0]
		if v.typ == TypeFloat64 {
			buf = strconv.AppendFloat(buf, v.f64[i], 'g', -1, 64)
		} else {
			buf = strconv.AppendFloat(buf, float64(v.f32[i]), 'g', 6, 32)
		}
		sb.Write(buf)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ExtractText returns the canonical text form of v.
func ExtractText(v *Vector) string { return v.String() }

// narrow rounds f to float32, saturating instead of overflowing to infinity.
func narrow(f float64) float32 {
	switch {
	case f > math.MaxFloat32:
		return math.MaxFloat32
	case f < -math.MaxFloat32:
		return -math.MaxFloat32
	}
	return float32(f)
}
