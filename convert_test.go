// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder_test

import (
	"encoding/binary"
	"math"
	"testing"

	"code.hybscloud.com/netorder"
)

func TestHostOrder_MatchesNativeEndian(t *testing.T) {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	little := b[0] == 0x02
	if netorder.HostLittleEndian != little {
		t.Fatalf("HostLittleEndian=%v but memory layout is % x", netorder.HostLittleEndian, b)
	}
	want := binary.ByteOrder(binary.BigEndian)
	if little {
		want = binary.LittleEndian
	}
	if netorder.HostByteOrder() != want {
		t.Fatalf("HostByteOrder()=%v want %v", netorder.HostByteOrder(), want)
	}
}

// The in-memory bytes of a converted value are big-endian on every host.
func TestToNetwork_MemoryLayoutIsBigEndian(t *testing.T) {
	var b [8]byte

	binary.NativeEndian.PutUint16(b[:2], netorder.ToNetworkUint16(0x1234))
	if b[0] != 0x12 || b[1] != 0x34 {
		t.Fatalf("uint16 bytes % x want 12 34", b[:2])
	}

	binary.NativeEndian.PutUint32(b[:4], netorder.ToNetworkUint32(0x12345678))
	if [4]byte(b[:4]) != [4]byte{0x12, 0x34, 0x56, 0x78} {
		t.Fatalf("uint32 bytes % x want 12 34 56 78", b[:4])
	}

	binary.NativeEndian.PutUint64(b[:], netorder.ToNetworkUint64(0x0102030405060708))
	if b != [8]byte{1, 2, 3, 4, 5, 6, 7, 8} {
		t.Fatalf("uint64 bytes % x want 01 02 03 04 05 06 07 08", b)
	}

	binary.NativeEndian.PutUint16(b[:2], uint16(netorder.ToNetworkInt16(-2)))
	if b[0] != 0xff || b[1] != 0xfe {
		t.Fatalf("int16 bytes % x want ff fe", b[:2])
	}

	f32 := netorder.Float32Bytes(netorder.ToNetworkFloat32(1.5))
	var want32 [4]byte
	binary.BigEndian.PutUint32(want32[:], math.Float32bits(1.5))
	if f32 != want32 {
		t.Fatalf("float32 bytes % x want % x", f32, want32)
	}

	f64 := netorder.Float64Bytes(netorder.ToNetworkFloat64(-math.Pi))
	var want64 [8]byte
	binary.BigEndian.PutUint64(want64[:], math.Float64bits(-math.Pi))
	if f64 != want64 {
		t.Fatalf("float64 bytes % x want % x", f64, want64)
	}
}

func TestToNetwork_Vectors(t *testing.T) {
	if !netorder.HostLittleEndian {
		t.Skip("vectors assume a little-endian host")
	}
	if got := netorder.ToNetworkUint16(0x1234); got != 0x3412 {
		t.Fatalf("ToNetworkUint16=%#04x want 0x3412", got)
	}
	if got := netorder.ToNetworkUint32(0x12345678); got != 0x78563412 {
		t.Fatalf("ToNetworkUint32=%#08x want 0x78563412", got)
	}
	if got := netorder.ToNetworkUint64(0x0102030405060708); got != 0x0807060504030201 {
		t.Fatalf("ToNetworkUint64=%#016x want 0x0807060504030201", got)
	}
	v := netorder.Float32FromBytes([4]byte{0xaa, 0xbb, 0xcc, 0xdd})
	if got := netorder.Float32Bytes(netorder.ToNetworkFloat32(v)); got != [4]byte{0xdd, 0xcc, 0xbb, 0xaa} {
		t.Fatalf("float32 raw bytes % x want dd cc bb aa", got)
	}
}

func TestToNetwork_BigEndianHostPassThrough(t *testing.T) {
	if netorder.HostLittleEndian {
		t.Skip("pass-through applies to big-endian hosts")
	}
	for _, v := range samples() {
		if netorder.ToNetworkUint64(v) != v || netorder.FromNetworkUint64(v) != v {
			t.Fatalf("uint64 %#x not passed through", v)
		}
		if netorder.ToNetworkUint32(uint32(v)) != uint32(v) || netorder.FromNetworkUint32(uint32(v)) != uint32(v) {
			t.Fatalf("uint32 %#x not passed through", uint32(v))
		}
		f := math.Float64frombits(v)
		if math.Float64bits(netorder.ToNetworkFloat64(f)) != v {
			t.Fatalf("float64 bits %#x not passed through", v)
		}
	}
}

func TestToNetwork_AgreesWithFromNetwork(t *testing.T) {
	for _, v := range samples() {
		if netorder.ToNetworkUint16(uint16(v)) != netorder.FromNetworkUint16(uint16(v)) {
			t.Fatalf("uint16 %#x: directions disagree", uint16(v))
		}
		if netorder.ToNetworkInt64(int64(v)) != netorder.FromNetworkInt64(int64(v)) {
			t.Fatalf("int64 %d: directions disagree", int64(v))
		}
	}
}

func TestRoundTrip_AllTypes(t *testing.T) {
	for _, v := range samples() {
		if got := netorder.FromNetworkUint8(netorder.ToNetworkUint8(uint8(v))); got != uint8(v) {
			t.Fatalf("uint8 %#x: got=%#x", uint8(v), got)
		}
		if got := netorder.FromNetworkInt8(netorder.ToNetworkInt8(int8(v))); got != int8(v) {
			t.Fatalf("int8 %d: got=%d", int8(v), got)
		}
		if got := netorder.FromNetworkUint16(netorder.ToNetworkUint16(uint16(v))); got != uint16(v) {
			t.Fatalf("uint16 %#x: got=%#x", uint16(v), got)
		}
		if got := netorder.ToNetworkUint16(netorder.FromNetworkUint16(uint16(v))); got != uint16(v) {
			t.Fatalf("uint16 reverse %#x: got=%#x", uint16(v), got)
		}
		if got := netorder.FromNetworkInt16(netorder.ToNetworkInt16(int16(v))); got != int16(v) {
			t.Fatalf("int16 %d: got=%d", int16(v), got)
		}
		if got := netorder.FromNetworkUint32(netorder.ToNetworkUint32(uint32(v))); got != uint32(v) {
			t.Fatalf("uint32 %#x: got=%#x", uint32(v), got)
		}
		if got := netorder.ToNetworkUint32(netorder.FromNetworkUint32(uint32(v))); got != uint32(v) {
			t.Fatalf("uint32 reverse %#x: got=%#x", uint32(v), got)
		}
		if got := netorder.FromNetworkInt32(netorder.ToNetworkInt32(int32(v))); got != int32(v) {
			t.Fatalf("int32 %d: got=%d", int32(v), got)
		}
		if got := netorder.FromNetworkUint64(netorder.ToNetworkUint64(v)); got != v {
			t.Fatalf("uint64 %#x: got=%#x", v, got)
		}
		if got := netorder.ToNetworkUint64(netorder.FromNetworkUint64(v)); got != v {
			t.Fatalf("uint64 reverse %#x: got=%#x", v, got)
		}
		if got := netorder.FromNetworkInt64(netorder.ToNetworkInt64(int64(v))); got != int64(v) {
			t.Fatalf("int64 %d: got=%d", int64(v), got)
		}
		f32 := math.Float32frombits(uint32(v))
		if got := math.Float32bits(netorder.FromNetworkFloat32(netorder.ToNetworkFloat32(f32))); got != uint32(v) {
			t.Fatalf("float32 bits %#08x: got=%#08x", uint32(v), got)
		}
		f64 := math.Float64frombits(v)
		if got := math.Float64bits(netorder.ToNetworkFloat64(netorder.FromNetworkFloat64(f64))); got != v {
			t.Fatalf("float64 bits %#016x: got=%#016x", v, got)
		}
	}
}
