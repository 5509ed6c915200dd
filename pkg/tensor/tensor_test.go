package tensor

import (
	"encoding/binary"
	"testing"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestParseDataType(t *testing.T) {
	dt, err := ParseDataType("INT32")
	assert.NoError(t, err)
	assert.Equal(t, DataTypeInt32, dt)
	assert.Equal(t, "INT32", dt.String())
	assert.Equal(t, 4, dt.Size())

	_, err = ParseDataType("COMPLEX128")
	assert.Error(t, err)
}

func TestFixedWidthRoundTrip(t *testing.T) {
	tn := New("INPUT0", []int64{2, 3}, DataTypeInt32)
	values := []int32{0, -1, 2, -3, 4, 5}
	assert.NoError(t, tn.SetInt32s(values))
	assert.Equal(t, 24, len(tn.Raw()))

	got, err := tn.Int32s()
	assert.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestFloat64RoundTrip(t *testing.T) {
	tn := New("INPUT0", []int64{4}, DataTypeFP64)
	values := []float64{0, -1.5, 3.25, 1e300}
	assert.NoError(t, tn.SetFloat64s(values))

	got, err := tn.Float64s()
	assert.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestBoolRoundTrip(t *testing.T) {
	tn := New("FLAGS", []int64{3}, DataTypeBool)
	assert.NoError(t, tn.SetBools([]bool{true, false, true}))
	got, err := tn.Bools()
	assert.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestFloat16RoundTrip(t *testing.T) {
	tn := New("HALF", []int64{3}, DataTypeFP16)
	assert.NoError(t, tn.SetFloat16s([]float32{1.5, -0.25, 1024}))
	got, err := tn.Float16s()
	assert.NoError(t, err)
	assert.Equal(t, []float32{1.5, -0.25, 1024}, got)
}

func TestBFloat16RoundTrip(t *testing.T) {
	tn := New("BHALF", []int64{2}, DataTypeBF16)
	assert.NoError(t, tn.SetBFloat16s([]float32{1.5, -2}))
	got, err := tn.BFloat16s()
	assert.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2}, got)
}

func TestStringsFraming(t *testing.T) {
	tn := New("WORDS", []int64{3}, DataTypeBytes)
	values := []string{"alpha", "", "gamma"}
	assert.NoError(t, tn.SetStrings(values))

	raw := tn.Raw()
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(raw[:4]))
	assert.Equal(t, "alpha", string(raw[4:9]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(raw[9:13]))

	got, err := tn.Strings()
	assert.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestValidateLengthMismatch(t *testing.T) {
	tn := New("INPUT0", []int64{1, 16}, DataTypeInt32)
	err := tn.SetRaw(make([]byte, 60))
	assert.Error(t, err)
	assert.True(t, api.IsCodecError(err))
	assert.Nil(t, tn.Raw())
}

func TestValidateBytesTruncatedPrefix(t *testing.T) {
	tn := New("WORDS", []int64{2}, DataTypeBytes)
	buf := make([]byte, 7)
	binary.LittleEndian.PutUint32(buf, 1)
	buf[4] = 'x'
	err := tn.SetRaw(buf)
	assert.Error(t, err)
	assert.True(t, api.IsCodecError(err))
}

func TestSetValuesCountMismatch(t *testing.T) {
	tn := New("INPUT0", []int64{2, 2}, DataTypeInt32)
	err := tn.SetInt32s([]int32{1, 2, 3})
	assert.Error(t, err)
	assert.True(t, api.IsCodecError(err))
}

func TestSetValuesDatatypeMismatch(t *testing.T) {
	tn := New("INPUT0", []int64{2}, DataTypeFP32)
	err := tn.SetInt32s([]int32{1, 2})
	assert.Error(t, err)
	assert.True(t, api.IsCodecError(err))
}

func TestTextValuesMatchBinary(t *testing.T) {
	tests := []struct {
		name string
		fill func(tn *Tensor) error
		dt   DataType
		want []string
	}{
		{
			name: "int32",
			dt:   DataTypeInt32,
			fill: func(tn *Tensor) error { return tn.SetInt32s([]int32{-7, 0, 42}) },
			want: []string{"-7", "0", "42"},
		},
		{
			name: "uint64",
			dt:   DataTypeUint64,
			fill: func(tn *Tensor) error { return tn.SetUint64s([]uint64{1, 18446744073709551615, 9}) },
			want: []string{"1", "18446744073709551615", "9"},
		},
		{
			name: "fp32",
			dt:   DataTypeFP32,
			fill: func(tn *Tensor) error { return tn.SetFloat32s([]float32{0.5, -2, 100}) },
			want: []string{"0.5", "-2", "100"},
		},
		{
			name: "bool",
			dt:   DataTypeBool,
			fill: func(tn *Tensor) error { return tn.SetBools([]bool{true, false, true}) },
			want: []string{"true", "false", "true"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := New("T", []int64{3}, tt.dt)
			assert.NoError(t, tt.fill(tn))
			got, err := tn.TextValues()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			decoded := New("T", []int64{3}, tt.dt)
			assert.NoError(t, decoded.SetTextValues(got))
			assert.Equal(t, tn.Raw(), decoded.Raw())
		})
	}
}

func TestSetTextValuesOverflow(t *testing.T) {
	tn := New("T", []int64{1}, DataTypeUint8)
	err := tn.SetTextValues([]string{"300"})
	assert.Error(t, err)
	assert.True(t, api.IsCodecError(err))
}

func TestJSONValuesRoundTrip(t *testing.T) {
	tn := New("T", []int64{2, 2}, DataTypeInt64)
	assert.NoError(t, tn.SetInt64s([]int64{1, -2, 3, -4}))

	vals, err := tn.JSONValues()
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), int64(-2), int64(3), int64(-4)}, vals)

	decoded := New("T", []int64{2, 2}, DataTypeInt64)
	assert.NoError(t, decoded.SetFromJSONValues([]interface{}{float64(1), float64(-2), float64(3), float64(-4)}))
	assert.Equal(t, tn.Raw(), decoded.Raw())
}

func TestJSONValuesBytes(t *testing.T) {
	tn := New("T", []int64{2}, DataTypeBytes)
	assert.NoError(t, tn.SetStrings([]string{"hello", "world"}))
	vals, err := tn.JSONValues()
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{"hello", "world"}, vals)
}
