package vector

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBinary_RoundTrip(t *testing.T) {
	testCases := []struct {
		description string
		vec         *Vector
	}{
		{description: "float32", vec: New32(0.0, 1.5, -2.25, 3.75)},
		{description: "float64", vec: New64(0.1, -1e300, math.SmallestNonzeroFloat64)},
		{description: "empty float32", vec: New32()},
		{description: "empty float64", vec: New64()},
		{description: "negative zero", vec: New32(float32(math.Copysign(0, -1)))},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			b := testCase.vec.EncodeBinary()
			assert.Equal(t, testCase.vec.Dims()*testCase.vec.Type().Size()+1, len(b))
			assert.Equal(t, byte(testCase.vec.Type()), b[len(b)-1])
			decoded, err := DecodeBinary(b)
			require.NoError(t, err)
			assert.True(t, testCase.vec.Equal(decoded), "got %v, want %v", decoded, testCase.vec)
		})
	}
}

func TestEncodeBinary_Layout(t *testing.T) {
	assert.Equal(t, "0000803f0000004001", hex.EncodeToString(New32(1, 2).EncodeBinary()))
	assert.Equal(t, "000000000000f03f02", hex.EncodeToString(New64(1).EncodeBinary()))
	assert.Equal(t, "01", hex.EncodeToString(New32().EncodeBinary()))
}

func TestDecodeBinary(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		options     []DecodeOption
		expect      string
		expectType  Type
		expectErr   string
	}{
		{description: "empty blob", input: "", expect: "[]", expectType: TypeFloat32},
		{description: "empty strict", input: "", options: []DecodeOption{WithStrictTrailer()}, expectErr: "invalid binary vector: missing type trailer"},
		{description: "trailer only f32", input: "01", expect: "[]", expectType: TypeFloat32},
		{description: "trailer only f64", input: "02", expect: "[]", expectType: TypeFloat64},
		{description: "f32 with trailer", input: "0000803f0000004001", expect: "[1,2]", expectType: TypeFloat32},
		{description: "f64 with trailer", input: "000000000000f03f02", expect: "[1]", expectType: TypeFloat64},
		{description: "raw f32 payload", input: "0000803f00000040", expect: "[1,2]", expectType: TypeFloat32},
		{description: "raw f32 strict", input: "0000803f", options: []DecodeOption{WithStrictTrailer()}, expectErr: "invalid binary vector: missing type trailer"},
		{description: "zero trailer", input: "0000000000", expectErr: "invalid binary vector: unexpected type: 0"},
		{description: "unknown trailer", input: "0000803f07", expectErr: "invalid binary vector: unexpected type: 7"},
		{description: "misaligned f64", input: "0000803f02", expectErr: "invalid binary vector: payload length 4 is not a multiple of 8"},
		{description: "misaligned raw", input: "0000803f0000", expectErr: "invalid binary vector: payload length 6 is not a multiple of 4"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			data, err := hex.DecodeString(testCase.input)
			require.NoError(t, err)
			vec, err := DecodeBinary(data, testCase.options...)
			if testCase.expectErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBinaryVector)
				assert.EqualError(t, err, testCase.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectType, vec.Type())
			assert.Equal(t, testCase.expect, vec.String())
		})
	}
}
