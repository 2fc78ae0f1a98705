// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import (
	"encoding/binary"
	"math"
)

// Raw byte views of floating-point values. The bytes are in host memory
// order, i.e. exactly what a pointer cast would expose, but obtained through
// math.Float32bits and friends without aliasing.
//
// The byte order objects are used as concrete values, not through the
// binary.ByteOrder interface, so the arrays stay on the stack.

// Float32Bytes returns the in-memory bytes of v.
func Float32Bytes(v float32) (b [4]byte) {
	if HostLittleEndian {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	} else {
		binary.BigEndian.PutUint32(b[:], math.Float32bits(v))
	}
	return
}

// Float32FromBytes builds a float32 from its in-memory bytes.
func Float32FromBytes(b [4]byte) float32 {
	if HostLittleEndian {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[:]))
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b[:]))
}

// Float64Bytes returns the in-memory bytes of v.
func Float64Bytes(v float64) (b [8]byte) {
	if HostLittleEndian {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	} else {
		binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	}
	return
}

// Float64FromBytes builds a float64 from its in-memory bytes.
func Float64FromBytes(b [8]byte) float64 {
	if HostLittleEndian {
		return math.Float64frombits(binary.LittleEndian.Uint64(b[:]))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b[:]))
}
