package tensor

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/AugurML/augur-client/pkg/api"
	"github.com/x448/float16"
)

// TextValues renders every element as its decimal string form, in row
// major order. Used for the JSON "data" member of non-binary HTTP
// tensors and for log friendly dumps.
func (t *Tensor) TextValues() ([]string, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Datatype == DataTypeBytes {
		return t.Strings()
	}
	count := int(t.ElementCount())
	size := t.Datatype.Size()
	out := make([]string, count)
	for i := 0; i < count; i++ {
		chunk := t.data[i*size : (i+1)*size]
		out[i] = formatElement(t.Datatype, chunk)
	}
	return out, nil
}

// SetTextValues parses one decimal string per element and encodes the
// result into the wire buffer. Inverse of TextValues.
func (t *Tensor) SetTextValues(values []string) error {
	if t.Datatype == DataTypeBytes {
		return t.SetStrings(values)
	}
	if int64(len(values)) != t.ElementCount() {
		return api.NewCodecError(fmt.Sprintf(
			"tensor %s: %d values do not fill shape %v", t.Name, len(values), t.Shape))
	}
	size := t.Datatype.Size()
	buf := make([]byte, len(values)*size)
	for i, v := range values {
		if err := parseElement(t.Datatype, v, buf[i*size:(i+1)*size]); err != nil {
			return api.NewCodecError(fmt.Sprintf(
				"tensor %s: element %d: %v", t.Name, i, err))
		}
	}
	t.data = buf
	return nil
}

// JSONValues renders the elements as values suitable for a JSON "data"
// array: bools, strings for BYTES, and numbers for everything else.
func (t *Tensor) JSONValues() ([]interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	count := int(t.ElementCount())
	out := make([]interface{}, count)
	switch t.Datatype {
	case DataTypeBool:
		vals, _ := t.Bools()
		for i, v := range vals {
			out[i] = v
		}
	case DataTypeBytes:
		vals, _ := t.Strings()
		for i, v := range vals {
			out[i] = v
		}
	default:
		size := t.Datatype.Size()
		for i := 0; i < count; i++ {
			out[i] = jsonElement(t.Datatype, t.data[i*size:(i+1)*size])
		}
	}
	return out, nil
}

// SetFromJSONValues encodes a decoded JSON "data" array into the wire
// buffer. Numbers may arrive as json.Number or float64 depending on
// the decoder configuration.
func (t *Tensor) SetFromJSONValues(values []interface{}) error {
	texts := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case json.Number:
			texts[i] = x.String()
		case string:
			texts[i] = x
		case bool:
			if x {
				texts[i] = "true"
			} else {
				texts[i] = "false"
			}
		case float64:
			texts[i] = strconv.FormatFloat(x, 'g', -1, 64)
		default:
			return api.NewCodecError(fmt.Sprintf(
				"tensor %s: element %d has unsupported JSON type %T", t.Name, i, v))
		}
	}
	return t.SetTextValues(texts)
}

func formatElement(datatype DataType, chunk []byte) string {
	switch datatype {
	case DataTypeBool:
		if chunk[0] != 0 {
			return "true"
		}
		return "false"
	case DataTypeUint8:
		return strconv.FormatUint(uint64(chunk[0]), 10)
	case DataTypeUint16:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint16(chunk)), 10)
	case DataTypeUint32:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(chunk)), 10)
	case DataTypeUint64:
		return strconv.FormatUint(binary.LittleEndian.Uint64(chunk), 10)
	case DataTypeInt8:
		return strconv.FormatInt(int64(int8(chunk[0])), 10)
	case DataTypeInt16:
		return strconv.FormatInt(int64(int16(binary.LittleEndian.Uint16(chunk))), 10)
	case DataTypeInt32:
		return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(chunk))), 10)
	case DataTypeInt64:
		return strconv.FormatInt(int64(binary.LittleEndian.Uint64(chunk)), 10)
	case DataTypeFP16:
		v := float16.Float16(binary.LittleEndian.Uint16(chunk)).Float32()
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case DataTypeBF16:
		v := math.Float32frombits(uint32(binary.LittleEndian.Uint16(chunk)) << 16)
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case DataTypeFP32:
		v := math.Float32frombits(binary.LittleEndian.Uint32(chunk))
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case DataTypeFP64:
		v := math.Float64frombits(binary.LittleEndian.Uint64(chunk))
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}

func parseElement(datatype DataType, value string, chunk []byte) error {
	switch datatype {
	case DataTypeBool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		if v {
			chunk[0] = 1
		} else {
			chunk[0] = 0
		}
	case DataTypeUint8, DataTypeUint16, DataTypeUint32, DataTypeUint64:
		v, err := parseUint(value, datatype.Size()*8)
		if err != nil {
			return err
		}
		putUintLE(chunk, v)
	case DataTypeInt8, DataTypeInt16, DataTypeInt32, DataTypeInt64:
		v, err := parseInt(value, datatype.Size()*8)
		if err != nil {
			return err
		}
		putUintLE(chunk, uint64(v))
	case DataTypeFP16:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(chunk, uint16(float16.Fromfloat32(float32(v))))
	case DataTypeBF16:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(chunk, uint16(math.Float32bits(float32(v))>>16))
	case DataTypeFP32:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(chunk, math.Float32bits(float32(v)))
	case DataTypeFP64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(chunk, math.Float64bits(v))
	default:
		return fmt.Errorf("datatype %s has no text form", datatype)
	}
	return nil
}

// parseUint tolerates the float renderings a permissive JSON decoder
// may hand over for integral values, e.g. "16" arriving as "16" or a
// lossless "1.6e+01".
func parseUint(value string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, bits)
	if err == nil {
		return v, nil
	}
	f, ferr := strconv.ParseFloat(value, 64)
	if ferr != nil || f != math.Trunc(f) || f < 0 || f > float64(uint64(math.MaxUint64)>>(64-bits)) {
		return 0, err
	}
	return uint64(f), nil
}

func parseInt(value string, bits int) (int64, error) {
	v, err := strconv.ParseInt(value, 10, bits)
	if err == nil {
		return v, nil
	}
	f, ferr := strconv.ParseFloat(value, 64)
	max := float64(int64(1) << (bits - 1))
	if ferr != nil || f != math.Trunc(f) || f < -max || f >= max {
		return 0, err
	}
	return int64(f), nil
}

func putUintLE(chunk []byte, v uint64) {
	switch len(chunk) {
	case 1:
		chunk[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(chunk, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(chunk, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(chunk, v)
	}
}

func jsonElement(datatype DataType, chunk []byte) interface{} {
	switch datatype {
	case DataTypeUint8:
		return uint64(chunk[0])
	case DataTypeUint16:
		return uint64(binary.LittleEndian.Uint16(chunk))
	case DataTypeUint32:
		return uint64(binary.LittleEndian.Uint32(chunk))
	case DataTypeUint64:
		return binary.LittleEndian.Uint64(chunk)
	case DataTypeInt8:
		return int64(int8(chunk[0]))
	case DataTypeInt16:
		return int64(int16(binary.LittleEndian.Uint16(chunk)))
	case DataTypeInt32:
		return int64(int32(binary.LittleEndian.Uint32(chunk)))
	case DataTypeInt64:
		return int64(binary.LittleEndian.Uint64(chunk))
	case DataTypeFP16:
		return float64(float16.Float16(binary.LittleEndian.Uint16(chunk)).Float32())
	case DataTypeBF16:
		return float64(math.Float32frombits(uint32(binary.LittleEndian.Uint16(chunk)) << 16))
	case DataTypeFP32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(chunk)))
	case DataTypeFP64:
		return math.Float64frombits(binary.LittleEndian.Uint64(chunk))
	}
	return nil
}
