// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

// Network byte order is big-endian. Each conversion swaps when the host is
// little-endian and is the identity otherwise; the branch is on a constant
// and disappears at compile time.
//
// ToNetwork and FromNetwork perform the same transformation because byte
// reversal is its own inverse. Both exist so call sites state direction.

// ToNetworkUint8 converts v from host to network byte order.
func ToNetworkUint8(v uint8) uint8 {
	if HostLittleEndian {
		return SwapUint8(v)
	}
	return v
}

// FromNetworkUint8 converts v from network to host byte order.
func FromNetworkUint8(v uint8) uint8 {
	if HostLittleEndian {
		return SwapUint8(v)
	}
	return v
}

// ToNetworkInt8 is the int8 form of ToNetworkUint8.
func ToNetworkInt8(v int8) int8 {
	if HostLittleEndian {
		return SwapInt8(v)
	}
	return v
}

// FromNetworkInt8 is the int8 form of FromNetworkUint8.
func FromNetworkInt8(v int8) int8 {
	if HostLittleEndian {
		return SwapInt8(v)
	}
	return v
}

// ToNetworkUint16 converts v from host to network byte order.
// On a little-endian host ToNetworkUint16(0x1234) == 0x3412.
func ToNetworkUint16(v uint16) uint16 {
	if HostLittleEndian {
		return SwapUint16(v)
	}
	return v
}

// FromNetworkUint16 converts v from network to host byte order.
func FromNetworkUint16(v uint16) uint16 {
	if HostLittleEndian {
		return SwapUint16(v)
	}
	return v
}

// ToNetworkInt16 is the int16 form of ToNetworkUint16.
func ToNetworkInt16(v int16) int16 {
	if HostLittleEndian {
		return SwapInt16(v)
	}
	return v
}

// FromNetworkInt16 is the int16 form of FromNetworkUint16.
func FromNetworkInt16(v int16) int16 {
	if HostLittleEndian {
		return SwapInt16(v)
	}
	return v
}

// ToNetworkUint32 converts v from host to network byte order.
func ToNetworkUint32(v uint32) uint32 {
	if HostLittleEndian {
		return SwapUint32(v)
	}
	return v
}

// FromNetworkUint32 converts v from network to host byte order.
func FromNetworkUint32(v uint32) uint32 {
	if HostLittleEndian {
		return SwapUint32(v)
	}
	return v
}

// ToNetworkInt32 is the int32 form of ToNetworkUint32.
func ToNetworkInt32(v int32) int32 {
	if HostLittleEndian {
		return SwapInt32(v)
	}
	return v
}

// FromNetworkInt32 is the int32 form of FromNetworkUint32.
func FromNetworkInt32(v int32) int32 {
	if HostLittleEndian {
		return SwapInt32(v)
	}
	return v
}

// ToNetworkUint64 converts v from host to network byte order.
func ToNetworkUint64(v uint64) uint64 {
	if HostLittleEndian {
		return SwapUint64(v)
	}
	return v
}

// FromNetworkUint64 converts v from network to host byte order.
func FromNetworkUint64(v uint64) uint64 {
	if HostLittleEndian {
		return SwapUint64(v)
	}
	return v
}

// ToNetworkInt64 is the int64 form of ToNetworkUint64.
func ToNetworkInt64(v int64) int64 {
	if HostLittleEndian {
		return SwapInt64(v)
	}
	return v
}

// FromNetworkInt64 is the int64 form of FromNetworkUint64.
func FromNetworkInt64(v int64) int64 {
	if HostLittleEndian {
		return SwapInt64(v)
	}
	return v
}

// ToNetworkFloat32 converts v from host to network byte order.
func ToNetworkFloat32(v float32) float32 {
	if HostLittleEndian {
		return SwapFloat32(v)
	}
	return v
}

// FromNetworkFloat32 converts v from network to host byte order.
func FromNetworkFloat32(v float32) float32 {
	if HostLittleEndian {
		return SwapFloat32(v)
	}
	return v
}

// ToNetworkFloat64 converts v from host to network byte order.
func ToNetworkFloat64(v float64) float64 {
	if HostLittleEndian {
		return SwapFloat64(v)
	}
	return v
}

// FromNetworkFloat64 converts v from network to host byte order.
func FromNetworkFloat64(v float64) float64 {
	if HostLittleEndian {
		return SwapFloat64(v)
	}
	return v
}
