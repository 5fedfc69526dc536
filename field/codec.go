package field

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/ppopth/deniable-galois/pb"
)

// Marshal serializes the matrix to protobuf wire format. The element width
// of T is recorded so the decoder can refuse a mismatched type.
func (m *Matrix[T]) Marshal() ([]byte, error) {
	msg := &pb.Matrix{
		Rows:  uint32(m.row),
		Cols:  uint32(m.col),
		Width: uint32(Width[T]()),
		Data:  make([]uint64, len(m.data)),
	}
	for i, v := range m.data {
		msg.Data[i] = uint64(v)
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal matrix: %w", err)
	}
	return data, nil
}

// UnmarshalMatrix decodes a matrix produced by Matrix.Marshal
func UnmarshalMatrix[T Unsigned](data []byte) (*Matrix[T], error) {
	msg := &pb.Matrix{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("unmarshal matrix: %w", err)
	}
	if w := int(msg.GetWidth()); w != Width[T]() {
		return nil, fmt.Errorf("%w: encoded %d bits, want %d", ErrWidthMismatch, w, Width[T]())
	}

	row, col := int(msg.GetRows()), int(msg.GetCols())
	if row <= 0 || col <= 0 || len(msg.GetData()) != row*col {
		return nil, fmt.Errorf("%w: %dx%d with %d elements", ErrBadShape, row, col, len(msg.GetData()))
	}
	limit := uint64(^T(0))
	m := &Matrix[T]{data: make([]T, row*col), row: row, col: col}
	for i, v := range msg.GetData() {
		if v > limit {
			return nil, fmt.Errorf("%w: element %d is %#x, wider than %d bits", ErrWidthMismatch, i, v, Width[T]())
		}
		m.data[i] = T(v)
	}
	return m, nil
}
