// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

// Byte reversal, one function per supported scalar type. Integer variants move
// each byte with shift-and-mask; the result holds exactly the input's bytes in
// reverse position order.

// SwapUint8 returns v. A single byte has no order.
func SwapUint8(v uint8) uint8 { return v }

// SwapInt8 returns v. A single byte has no order.
func SwapInt8(v int8) int8 { return v }

// SwapUint16 reverses the two bytes of v.
func SwapUint16(v uint16) uint16 {
	return v>>8&0x00ff |
		v<<8&0xff00
}

// SwapInt16 reverses the two bytes of v's two's complement representation.
func SwapInt16(v int16) int16 { return int16(SwapUint16(uint16(v))) }

// SwapUint32 reverses the four bytes of v.
func SwapUint32(v uint32) uint32 {
	return v>>24&0x000000ff |
		v<<24&0xff000000 |
		v>>8&0x0000ff00 |
		v<<8&0x00ff0000
}

// SwapInt32 reverses the four bytes of v's two's complement representation.
func SwapInt32(v int32) int32 { return int32(SwapUint32(uint32(v))) }

// SwapUint64 reverses the eight bytes of v. Each term moves one byte: 7 to 0,
// 0 to 7, 6 to 1, 1 to 6 and so on inward.
func SwapUint64(v uint64) uint64 {
	return v>>56&0x00000000000000ff |
		v<<56&0xff00000000000000 |
		v>>40&0x000000000000ff00 |
		v<<40&0x00ff000000000000 |
		v>>24&0x0000000000ff0000 |
		v<<24&0x0000ff0000000000 |
		v>>8&0x00000000ff000000 |
		v<<8&0x000000ff00000000
}

// SwapInt64 reverses the eight bytes of v's two's complement representation.
func SwapInt64(v int64) int64 { return int64(SwapUint64(uint64(v))) }

// SwapFloat32 reverses the four bytes of v's in-memory representation.
//
// No floating-point arithmetic is performed: NaN payloads and signed zeros
// are carried through bit for bit.
func SwapFloat32(v float32) float32 {
	in := Float32Bytes(v)
	var out [4]byte
	for i := range in {
		out[len(out)-1-i] = in[i]
	}
	return Float32FromBytes(out)
}

// SwapFloat64 reverses the eight bytes of v's in-memory representation.
func SwapFloat64(v float64) float64 {
	in := Float64Bytes(v)
	var out [8]byte
	for i := range in {
		out[len(out)-1-i] = in[i]
	}
	return Float64FromBytes(out)
}
