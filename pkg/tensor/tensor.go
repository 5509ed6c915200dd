package tensor

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/AugurML/augur-client/pkg/system"
	"github.com/x448/float16"
)

// Tensor is a named, shaped, typed data buffer exchanged with the
// inference server. The buffer always holds the wire layout:
// little-endian, row-major, contiguous; BYTES elements individually
// framed by a 4-byte little-endian length prefix.
type Tensor struct {
	Name     string
	Shape    []int64
	Datatype DataType

	data []byte
}

func New(name string, shape []int64, datatype DataType) *Tensor {
	return &Tensor{
		Name:     name,
		Shape:    shape,
		Datatype: datatype,
	}
}

// ElementCount is the product of the shape dimensions.
func (t *Tensor) ElementCount() int64 {
	count := int64(1)
	for _, dim := range t.Shape {
		count *= dim
	}
	return count
}

// Raw returns the wire-layout buffer without copying.
func (t *Tensor) Raw() []byte {
	return t.data
}

// SetRaw installs an already-encoded buffer after checking it against
// the declared shape and datatype.
func (t *Tensor) SetRaw(data []byte) error {
	old := t.data
	t.data = data
	if err := t.Validate(); err != nil {
		t.data = old
		return err
	}
	return nil
}

// Validate checks the buffer length invariant: count*size bytes for
// fixed-width types, and for BYTES a walk of the length prefixes that
// consumes the buffer exactly with one element per prefix.
func (t *Tensor) Validate() error {
	count := t.ElementCount()
	if t.Datatype == DataTypeBytes {
		offset := 0
		parsed := int64(0)
		for offset < len(t.data) {
			if offset+4 > len(t.data) {
				return api.NewCodecError(fmt.Sprintf(
					"tensor %s: truncated length prefix at byte %d", t.Name, offset))
			}
			elemLen := int(binary.LittleEndian.Uint32(t.data[offset : offset+4]))
			offset += 4 + elemLen
			parsed++
		}
		if offset != len(t.data) || parsed != count {
			return api.NewCodecError(fmt.Sprintf(
				"tensor %s: %d framed elements in %d bytes, shape %v expects %d",
				t.Name, parsed, len(t.data), t.Shape, count))
		}
		return nil
	}
	expected := count * int64(t.Datatype.Size())
	if int64(len(t.data)) != expected {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: buffer holds %d bytes, shape %v with datatype %s expects %d",
			t.Name, len(t.data), t.Shape, t.Datatype, expected))
	}
	return nil
}

// rawBytes reinterprets a fixed-width slice as its backing bytes.
func rawBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var z T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(z)))
}

// copyLE copies src into dst, swapping each width-sized group when the
// host byte order is not little-endian. On little-endian hosts this is
// a plain copy, so typed set/get paths stay zero conversion.
func copyLE(dst, src []byte, width int) {
	copy(dst, src)
	if system.ByteOrder == binary.LittleEndian || width == 1 {
		return
	}
	for i := 0; i+width <= len(dst); i += width {
		for lo, hi := i, i+width-1; lo < hi; lo, hi = lo+1, hi-1 {
			dst[lo], dst[hi] = dst[hi], dst[lo]
		}
	}
}

func setFixed[T any](t *Tensor, datatype DataType, values []T) error {
	if t.Datatype != datatype {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: cannot assign %s values to datatype %s", t.Name, datatype, t.Datatype))
	}
	if int64(len(values)) != t.ElementCount() {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: %d values do not fill shape %v", t.Name, len(values), t.Shape))
	}
	buf := make([]byte, len(values)*datatype.Size())
	copyLE(buf, rawBytes(values), datatype.Size())
	t.data = buf
	return nil
}

func getFixed[T any](t *Tensor, datatype DataType) ([]T, error) {
	if t.Datatype != datatype {
		return nil, api.NewCodecError(fmt.Sprintf(
			"tensor %s: datatype is %s, not %s", t.Name, t.Datatype, datatype))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	out := make([]T, t.ElementCount())
	copyLE(rawBytes(out), t.data, datatype.Size())
	return out, nil
}

func (t *Tensor) SetBools(values []bool) error {
	if t.Datatype != DataTypeBool {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: cannot assign BOOL values to datatype %s", t.Name, t.Datatype))
	}
	if int64(len(values)) != t.ElementCount() {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: %d values do not fill shape %v", t.Name, len(values), t.Shape))
	}
	buf := make([]byte, len(values))
	for i, v := range values {
		if v {
			buf[i] = 1
		}
	}
	t.data = buf
	return nil
}

func (t *Tensor) Bools() ([]bool, error) {
	if t.Datatype != DataTypeBool {
		return nil, api.NewCodecError(fmt.Sprintf(
			"tensor %s: datatype is %s, not BOOL", t.Name, t.Datatype))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	out := make([]bool, len(t.data))
	for i, b := range t.data {
		out[i] = b != 0
	}
	return out, nil
}

func (t *Tensor) SetUint8s(values []uint8) error   { return setFixed(t, DataTypeUint8, values) }
func (t *Tensor) SetUint16s(values []uint16) error { return setFixed(t, DataTypeUint16, values) }
func (t *Tensor) SetUint32s(values []uint32) error { return setFixed(t, DataTypeUint32, values) }
func (t *Tensor) SetUint64s(values []uint64) error { return setFixed(t, DataTypeUint64, values) }
func (t *Tensor) SetInt8s(values []int8) error     { return setFixed(t, DataTypeInt8, values) }
func (t *Tensor) SetInt16s(values []int16) error   { return setFixed(t, DataTypeInt16, values) }
func (t *Tensor) SetInt32s(values []int32) error   { return setFixed(t, DataTypeInt32, values) }
func (t *Tensor) SetInt64s(values []int64) error   { return setFixed(t, DataTypeInt64, values) }
func (t *Tensor) SetFloat32s(values []float32) error {
	return setFixed(t, DataTypeFP32, values)
}
func (t *Tensor) SetFloat64s(values []float64) error {
	return setFixed(t, DataTypeFP64, values)
}

func (t *Tensor) Uint8s() ([]uint8, error)     { return getFixed[uint8](t, DataTypeUint8) }
func (t *Tensor) Uint16s() ([]uint16, error)   { return getFixed[uint16](t, DataTypeUint16) }
func (t *Tensor) Uint32s() ([]uint32, error)   { return getFixed[uint32](t, DataTypeUint32) }
func (t *Tensor) Uint64s() ([]uint64, error)   { return getFixed[uint64](t, DataTypeUint64) }
func (t *Tensor) Int8s() ([]int8, error)       { return getFixed[int8](t, DataTypeInt8) }
func (t *Tensor) Int16s() ([]int16, error)     { return getFixed[int16](t, DataTypeInt16) }
func (t *Tensor) Int32s() ([]int32, error)     { return getFixed[int32](t, DataTypeInt32) }
func (t *Tensor) Int64s() ([]int64, error)     { return getFixed[int64](t, DataTypeInt64) }
func (t *Tensor) Float32s() ([]float32, error) { return getFixed[float32](t, DataTypeFP32) }
func (t *Tensor) Float64s() ([]float64, error) { return getFixed[float64](t, DataTypeFP64) }

// SetFloat16s stores float32 values as IEEE half precision.
func (t *Tensor) SetFloat16s(values []float32) error {
	halves := make([]uint16, len(values))
	for i, v := range values {
		halves[i] = uint16(float16.Fromfloat32(v))
	}
	return setFixed(t, DataTypeFP16, halves)
}

// Float16s widens the stored half-precision values back to float32.
func (t *Tensor) Float16s() ([]float32, error) {
	halves, err := getFixed[uint16](t, DataTypeFP16)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(halves))
	for i, h := range halves {
		out[i] = float16.Float16(h).Float32()
	}
	return out, nil
}

// SetBFloat16s truncates float32 values to bfloat16.
func (t *Tensor) SetBFloat16s(values []float32) error {
	halves := make([]uint16, len(values))
	for i, v := range values {
		halves[i] = uint16(math.Float32bits(v) >> 16)
	}
	return setFixed(t, DataTypeBF16, halves)
}

// BFloat16s widens the stored bfloat16 values back to float32.
func (t *Tensor) BFloat16s() ([]float32, error) {
	halves, err := getFixed[uint16](t, DataTypeBF16)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(halves))
	for i, h := range halves {
		out[i] = math.Float32frombits(uint32(h) << 16)
	}
	return out, nil
}

// SetStrings stores BYTES elements with their length-prefix framing.
func (t *Tensor) SetStrings(values []string) error {
	if t.Datatype != DataTypeBytes {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: cannot assign BYTES values to datatype %s", t.Name, t.Datatype))
	}
	if int64(len(values)) != t.ElementCount() {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: %d values do not fill shape %v", t.Name, len(values), t.Shape))
	}
	total := 0
	for _, v := range values {
		total += 4 + len(v)
	}
	buf := make([]byte, total)
	offset := 0
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[offset:offset+4], uint32(len(v)))
		offset += 4
		offset += copy(buf[offset:], v)
	}
	t.data = buf
	return nil
}

// Strings walks the length-prefix framing and returns one string per
// element.
func (t *Tensor) Strings() ([]string, error) {
	if t.Datatype != DataTypeBytes {
		return nil, api.NewCodecError(fmt.Sprintf(
			"tensor %s: datatype is %s, not BYTES", t.Name, t.Datatype))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	out := make([]string, 0, t.ElementCount())
	offset := 0
	for offset < len(t.data) {
		elemLen := int(binary.LittleEndian.Uint32(t.data[offset : offset+4]))
		offset += 4
		out = append(out, string(t.data[offset:offset+elemLen]))
		offset += elemLen
	}
	return out, nil
}
