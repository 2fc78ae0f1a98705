//go:build !386 && !amd64 && !amd64p32 && !arm && !arm64 && !loong64 && !mipsle && !mips64le && !mips64p32le && !ppc64le && !riscv && !riscv64 && !wasm && !armbe && !arm64be && !mips && !mips64 && !mips64p32 && !ppc && !ppc64 && !s390 && !s390x && !sparc && !sparc64 && !netorder_le && !netorder_be

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

// The host byte order of this GOARCH is not known. Build with
// -tags netorder_le or -tags netorder_be to state it explicitly.
const LittleEndian = set_netorder_le_or_netorder_be_build_tag
