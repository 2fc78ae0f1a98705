// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import (
	"encoding/binary"
	"io"
	"runtime"
	"time"

	"code.hybscloud.com/netorder/internal/bo"
)

const maxFieldLen = 8

// field holds one scalar in flight between the caller and the transport.
// width is zero when no field is in flight; off counts bytes already moved.
type field struct {
	order      binary.ByteOrder
	retryDelay time.Duration

	buf   [maxFieldLen]byte
	width int
	off   int
}

func newField(opts []Option) field {
	o := buildOptions(opts)
	return field{order: bo.Native(), retryDelay: o.RetryDelay}
}

// begin starts a field of n bytes, or checks that a resumed field has the same width.
// It reports whether the field buffer still has to be filled.
func (f *field) begin(n int) (fresh bool, err error) {
	if f.width == 0 {
		f.width, f.off = n, 0
		return true, nil
	}
	if f.width != n {
		return false, ErrFieldMismatch
	}
	return f.off == 0, nil
}

func (f *field) reset() {
	f.width = 0
	f.off = 0
}

func (f *field) waitOnceOnWouldBlock() bool {
	// returns whether the caller should retry
	if f.retryDelay < 0 {
		return false
	}
	if f.retryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(f.retryDelay)
	return true
}

func (f *field) readOnce(rd io.Reader, p []byte) (n int, err error) {
	for {
		n, err = rd.Read(p)
		// A Reader returning (0, nil) on a non-empty buffer would make the
		// field loop spin indefinitely.
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrNoProgress
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !f.waitOnceOnWouldBlock() {
			return n, err
		}
	}
}

func (f *field) writeOnce(wr io.Writer, p []byte) (n int, err error) {
	for {
		n, err = wr.Write(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrShortWrite
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !f.waitOnceOnWouldBlock() {
			return n, err
		}
	}
}

// recv reads until the in-flight field is complete.
func (f *field) recv(rd io.Reader) error {
	for f.off < f.width {
		rn, re := f.readOnce(rd, f.buf[f.off:f.width])
		f.off += rn
		if f.off == f.width {
			// Complete; any error is left for the next field.
			break
		}
		if re != nil {
			if re == ErrWouldBlock || re == ErrMore {
				if f.off == 0 {
					// Nothing moved; the next call may start any field.
					f.reset()
				}
				// Otherwise keep progress; the caller retries the same Read method.
				return re
			}
			partial := f.off > 0
			f.reset()
			if re == io.EOF {
				if partial {
					return io.ErrUnexpectedEOF
				}
				return io.EOF
			}
			return re
		}
	}
	f.reset()
	return nil
}

// send writes until the in-flight field is complete.
func (f *field) send(wr io.Writer) error {
	for f.off < f.width {
		wn, we := f.writeOnce(wr, f.buf[f.off:f.width])
		f.off += wn
		if f.off == f.width {
			break
		}
		if we != nil {
			if we == ErrWouldBlock || we == ErrMore {
				if f.off == 0 {
					f.reset()
				}
				return we
			}
			f.reset()
			return we
		}
	}
	f.reset()
	return nil
}
