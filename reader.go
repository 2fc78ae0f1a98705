// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import (
	"io"
	"math"
)

// Reader reads scalar fields in network byte order from an io.Reader.
//
// Each Read method collects the field's bytes, views them as a host-order
// value and converts it with the matching FromNetwork function.
//
// EOF handling: io.EOF is returned only when the stream ends on a field
// boundary; a stream that ends inside a field yields io.ErrUnexpectedEOF.
//
// Non-blocking semantics: if the underlying reader returns iox.ErrWouldBlock or
// iox.ErrMore before the field is complete, the method returns the zero value
// and that error, keeping the bytes already read. Call the same method again to
// finish the field; a different width returns ErrFieldMismatch. If no byte of
// the field had arrived, nothing is kept and any Read method may follow.
type Reader struct {
	rd io.Reader
	f  field
}

// NewReader returns a Reader that reads fields from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{rd: r, f: newField(opts)}
}

func (r *Reader) fill(n int) error {
	if r.rd == nil {
		return ErrInvalidArgument
	}
	if _, err := r.f.begin(n); err != nil {
		return err
	}
	return r.f.recv(r.rd)
}

// ReadUint8 reads a one-byte field.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return FromNetworkUint8(r.f.buf[0]), nil
}

// ReadInt8 reads a one-byte signed field.
func (r *Reader) ReadInt8() (int8, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return FromNetworkInt8(int8(r.f.buf[0])), nil
}

// ReadUint16 reads a 2-byte field.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return FromNetworkUint16(r.f.order.Uint16(r.f.buf[:2])), nil
}

// ReadInt16 reads a 2-byte two's complement field.
func (r *Reader) ReadInt16() (int16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return FromNetworkInt16(int16(r.f.order.Uint16(r.f.buf[:2]))), nil
}

// ReadUint32 reads a 4-byte field.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return FromNetworkUint32(r.f.order.Uint32(r.f.buf[:4])), nil
}

// ReadInt32 reads a 4-byte two's complement field.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return FromNetworkInt32(int32(r.f.order.Uint32(r.f.buf[:4]))), nil
}

// ReadUint64 reads an 8-byte field.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return FromNetworkUint64(r.f.order.Uint64(r.f.buf[:8])), nil
}

// ReadInt64 reads an 8-byte two's complement field.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return FromNetworkInt64(int64(r.f.order.Uint64(r.f.buf[:8]))), nil
}

// ReadFloat32 reads a 4-byte IEEE 754 field. The bit pattern is preserved.
func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return FromNetworkFloat32(math.Float32frombits(r.f.order.Uint32(r.f.buf[:4]))), nil
}

// ReadFloat64 reads an 8-byte IEEE 754 field. The bit pattern is preserved.
func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return FromNetworkFloat64(math.Float64frombits(r.f.order.Uint64(r.f.buf[:8]))), nil
}
