// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import (
	"io"
	"math"
)

// Writer writes scalar fields to an io.Writer in network byte order.
//
// Each Write method converts its value with the matching ToNetwork function and
// writes the resulting bytes as they lie in host memory, so the stream carries
// big-endian bytes on every host.
//
// Non-blocking semantics: if the underlying writer returns iox.ErrWouldBlock or
// iox.ErrMore before the field is complete, the method returns that error and
// keeps the bytes already written. Call the same method again with the same
// value to finish the field. Once part of a field has been written, a call
// with a different width returns ErrFieldMismatch. A field that stalled before
// any byte was written is dropped, so the next call may write any field.
type Writer struct {
	wr io.Writer
	f  field
}

// NewWriter returns a Writer that writes fields to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{wr: w, f: newField(opts)}
}

func (w *Writer) start(n int) (bool, error) {
	if w.wr == nil {
		return false, ErrInvalidArgument
	}
	return w.f.begin(n)
}

// WriteUint8 writes a one-byte field.
func (w *Writer) WriteUint8(v uint8) error {
	fresh, err := w.start(1)
	if err != nil {
		return err
	}
	if fresh {
		w.f.buf[0] = ToNetworkUint8(v)
	}
	return w.f.send(w.wr)
}

// WriteInt8 writes a one-byte signed field.
func (w *Writer) WriteInt8(v int8) error {
	fresh, err := w.start(1)
	if err != nil {
		return err
	}
	if fresh {
		w.f.buf[0] = byte(ToNetworkInt8(v))
	}
	return w.f.send(w.wr)
}

// WriteUint16 writes a 2-byte field.
func (w *Writer) WriteUint16(v uint16) error {
	fresh, err := w.start(2)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint16(w.f.buf[:2], ToNetworkUint16(v))
	}
	return w.f.send(w.wr)
}

// WriteInt16 writes a 2-byte two's complement field.
func (w *Writer) WriteInt16(v int16) error {
	fresh, err := w.start(2)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint16(w.f.buf[:2], uint16(ToNetworkInt16(v)))
	}
	return w.f.send(w.wr)
}

// WriteUint32 writes a 4-byte field.
func (w *Writer) WriteUint32(v uint32) error {
	fresh, err := w.start(4)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint32(w.f.buf[:4], ToNetworkUint32(v))
	}
	return w.f.send(w.wr)
}

// WriteInt32 writes a 4-byte two's complement field.
func (w *Writer) WriteInt32(v int32) error {
	fresh, err := w.start(4)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint32(w.f.buf[:4], uint32(ToNetworkInt32(v)))
	}
	return w.f.send(w.wr)
}

// WriteUint64 writes an 8-byte field.
func (w *Writer) WriteUint64(v uint64) error {
	fresh, err := w.start(8)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint64(w.f.buf[:8], ToNetworkUint64(v))
	}
	return w.f.send(w.wr)
}

// WriteInt64 writes an 8-byte two's complement field.
func (w *Writer) WriteInt64(v int64) error {
	fresh, err := w.start(8)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint64(w.f.buf[:8], uint64(ToNetworkInt64(v)))
	}
	return w.f.send(w.wr)
}

// WriteFloat32 writes a 4-byte IEEE 754 field. The bit pattern is preserved.
func (w *Writer) WriteFloat32(v float32) error {
	fresh, err := w.start(4)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint32(w.f.buf[:4], math.Float32bits(ToNetworkFloat32(v)))
	}
	return w.f.send(w.wr)
}

// WriteFloat64 writes an 8-byte IEEE 754 field. The bit pattern is preserved.
func (w *Writer) WriteFloat64(v float64) error {
	fresh, err := w.start(8)
	if err != nil {
		return err
	}
	if fresh {
		w.f.order.PutUint64(w.f.buf[:8], math.Float64bits(ToNetworkFloat64(v)))
	}
	return w.f.send(w.wr)
}
