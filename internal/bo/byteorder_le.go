//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || ppc64le || riscv || riscv64 || wasm || (netorder_le && !386 && !amd64 && !amd64p32 && !arm && !arm64 && !loong64 && !mipsle && !mips64le && !mips64p32le && !ppc64le && !riscv && !riscv64 && !wasm && !armbe && !arm64be && !mips && !mips64 && !mips64p32 && !ppc && !ppc64 && !s390 && !s390x && !sparc && !sparc64)

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import "encoding/binary"

// LittleEndian reports that the host stores the least significant byte first.
const LittleEndian = true

// Native returns the native byte order for little-endian targets.
func Native() binary.ByteOrder { return binary.LittleEndian }
