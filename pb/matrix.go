// Package pb holds the protobuf messages exchanged by the splitting and
// combining sides. Messages are described in matrix.proto and marshaled by
// gogo/protobuf through their struct tags.
package pb

import (
	proto "github.com/gogo/protobuf/proto"
)

// Matrix is a row-major matrix of GF(2^n) elements
type Matrix struct {
	Rows  uint32   `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols  uint32   `protobuf:"varint,2,opt,name=cols,proto3" json:"cols,omitempty"`
	Width uint32   `protobuf:"varint,3,opt,name=width,proto3" json:"width,omitempty"`
	Data  []uint64 `protobuf:"varint,4,rep,packed,name=data,proto3" json:"data,omitempty"`
}

func (m *Matrix) Reset()         { *m = Matrix{} }
func (m *Matrix) String() string { return proto.CompactTextString(m) }
func (*Matrix) ProtoMessage()    {}

func (m *Matrix) GetRows() uint32 {
	if m != nil {
		return m.Rows
	}
	return 0
}

func (m *Matrix) GetCols() uint32 {
	if m != nil {
		return m.Cols
	}
	return 0
}

func (m *Matrix) GetWidth() uint32 {
	if m != nil {
		return m.Width
	}
	return 0
}

func (m *Matrix) GetData() []uint64 {
	if m != nil {
		return m.Data
	}
	return nil
}

func init() {
	proto.RegisterType((*Matrix)(nil), "pb.Matrix")
}
