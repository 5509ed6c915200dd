package tensor

import "fmt"

// DataType enumerates the element types a tensor may carry. The wire
// names mirror what the inference server expects in envelopes and
// metadata.
type DataType int

const (
	DataTypeInvalid DataType = iota
	DataTypeBool
	DataTypeUint8
	DataTypeUint16
	DataTypeUint32
	DataTypeUint64
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeFP16
	DataTypeBF16
	DataTypeFP32
	DataTypeFP64
	// DataTypeBytes elements are variable length, each framed by a
	// 4-byte little-endian length prefix.
	DataTypeBytes
)

var dataTypeNames = map[DataType]string{
	DataTypeBool:   "BOOL",
	DataTypeUint8:  "UINT8",
	DataTypeUint16: "UINT16",
	DataTypeUint32: "UINT32",
	DataTypeUint64: "UINT64",
	DataTypeInt8:   "INT8",
	DataTypeInt16:  "INT16",
	DataTypeInt32:  "INT32",
	DataTypeInt64:  "INT64",
	DataTypeFP16:   "FP16",
	DataTypeBF16:   "BF16",
	DataTypeFP32:   "FP32",
	DataTypeFP64:   "FP64",
	DataTypeBytes:  "BYTES",
}

// Element size lookup table, -1 marks variable length
var elementSizeMap = map[DataType]int{
	DataTypeBool:   1,
	DataTypeUint8:  1,
	DataTypeUint16: 2,
	DataTypeUint32: 4,
	DataTypeUint64: 8,
	DataTypeInt8:   1,
	DataTypeInt16:  2,
	DataTypeInt32:  4,
	DataTypeInt64:  8,
	DataTypeFP16:   2,
	DataTypeBF16:   2,
	DataTypeFP32:   4,
	DataTypeFP64:   8,
	DataTypeBytes:  -1,
}

func (d DataType) String() string {
	if name, ok := dataTypeNames[d]; ok {
		return name
	}
	return "INVALID"
}

// Size returns the fixed byte size of one element, or -1 for the
// variable-length BYTES type.
func (d DataType) Size() int {
	if size, ok := elementSizeMap[d]; ok {
		return size
	}
	return -1
}

// ParseDataType resolves a wire name such as "INT32" or "BYTES".
func ParseDataType(name string) (DataType, error) {
	for dt, n := range dataTypeNames {
		if n == name {
			return dt, nil
		}
	}
	return DataTypeInvalid, fmt.Errorf("unsupported data type: %s", name)
}
