// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo states the host byte order as a build-time constant.
//
// Known GOARCH ports are classified through build constraints, and their
// classification always wins. Any other port must be built with the
// netorder_le or netorder_be tag; without one the package does not compile.
// On such a port, setting both tags is also a compile error. On a known port
// the tags are ignored.
package bo
