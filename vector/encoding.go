package vector

import (
	"encoding/binary"
	"math"
)

type decodeOptions struct {
	strictTrailer bool
}

// DecodeOption customizes DecodeBinary.
type DecodeOption func(*decodeOptions)

// WithStrictTrailer requires every BLOB to end with a type trailer. Without
// it, an empty BLOB decodes to the empty float32 vector and an even-length
// BLOB is read as a bare little-endian float32 payload.
func WithStrictTrailer() DecodeOption {
	return func(o *decodeOptions) { o.strictTrailer = true }
}

// EncodeBinary encodes v into its BLOB representation: the elements as a
// little-endian IEEE 754 sequence in their native width, followed by one
// trailer byte holding the Type.
func (v *Vector) EncodeBinary() []byte {
	size := v.typ.Size()
	b := make([]byte, v.Dims()*size+1)
	if v.typ == TypeFloat64 {
		for i, f := range v.f64 {
			binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(f))
		}
	} else {
		for i, f := range v.f32 {
			binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f))
		}
	}
	b[len(b)-1] = byte(v.typ)
	return b
}

// DecodeBinary decodes a BLOB produced by EncodeBinary back into a Vector.
// Odd-length input carries a type trailer in its last byte.
func DecodeBinary(data []byte, opts ...DecodeOption) (*Vector, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(data) == 0 {
		if o.strictTrailer {
			return nil, newError(ErrInvalidBinaryVector, "missing type trailer")
		}
		return &Vector{typ: TypeFloat32, f32: []float32{}}, nil
	}
	if len(data)%2 == 0 {
		if o.strictTrailer {
			return nil, newError(ErrInvalidBinaryVector, "missing type trailer")
		}
		return decodePayload(data, TypeFloat32)
	}
	typ := Type(data[len(data)-1])
	if !typ.Valid() {
		return nil, newError(ErrInvalidBinaryVector, "unexpected type: %d", uint8(typ))
	}
	return decodePayload(data[:len(data)-1], typ)
}

func decodePayload(payload []byte, typ Type) (*Vector, error) {
	size := typ.Size()
	if len(payload)%size != 0 {
		return nil, newError(ErrInvalidBinaryVector, "payload length %d is not a multiple of %d", len(payload), size)
	}
	n := len(payload) / size
	if typ == TypeFloat64 {
		vec := make([]float64, n)
		for i := 0; i < n; i++ {
			vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
		}
		return &Vector{typ: TypeFloat64, f64: vec}, nil
	}
	vec := make([]float32, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[i*4:]))
	}
	return &Vector{typ: TypeFloat32, f32: vec}, nil
}
