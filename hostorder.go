// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import (
	"encoding/binary"

	"code.hybscloud.com/netorder/internal/bo"
)

// HostLittleEndian is true when the build target stores multi-byte scalars
// least significant byte first.
//
// It is fixed at build time. Known GOARCH ports are classified automatically
// and ignore the override tags. Other ports must be built with
// -tags netorder_le or -tags netorder_be.
const HostLittleEndian = bo.LittleEndian

// HostByteOrder returns binary.LittleEndian or binary.BigEndian to match
// HostLittleEndian.
func HostByteOrder() binary.ByteOrder { return bo.Native() }
