// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package netorder converts fixed-width scalars between host and network byte
// order.
//
// Semantics and design:
//   - Host order is a build-time constant (HostLittleEndian). Known GOARCH ports
//     are classified by build constraints, which take precedence; any other port
//     must be built with -tags netorder_le or -tags netorder_be, otherwise the
//     package does not compile.
//   - Network order is big-endian. ToNetworkX and FromNetworkX swap on
//     little-endian hosts and pass values through on big-endian hosts.
//   - SwapX reverses the bytes of a value regardless of host order. There is one
//     function per supported type (uint8/int8 through uint64/int64, float32,
//     float64); other types do not compile.
//   - Floats are swapped through their raw bytes (Float32Bytes and friends), never
//     through arithmetic, so NaN payloads survive.
//   - None of the conversions allocate, block or fail.
//
// Reader and Writer move one scalar field at a time over an io.Reader or
// io.Writer in network byte order. iox.ErrWouldBlock and iox.ErrMore are
// surfaced as control-flow signals (re-exposed as ErrWouldBlock / ErrMore) and
// the partially transferred field is resumed by the next call.
package netorder

import "code.hybscloud.com/iox"

// These are provided as package-level aliases so callers can reference the
// semantic control-flow errors without importing iox directly.
var (
	// ErrWouldBlock means “no further progress without waiting”.
	//
	// It is an expected, non-failure control-flow signal for non-blocking I/O.
	// Bytes of the current field already transferred are kept.
	//
	// Caller action: retry the same Read/Write method later, or configure
	// RetryDelay to emulate cooperative blocking on top of a non-blocking transport.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means “this completion is usable and more completions will follow”.
	//
	// Caller action: call the same method again to continue the current field.
	ErrMore = iox.ErrMore
)
