// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import "errors"

var (
	// ErrInvalidArgument reports a nil reader or writer.
	ErrInvalidArgument = errors.New("netorder: invalid argument")

	// ErrFieldMismatch reports that a field was resumed with a different width
	// than the one left in flight by ErrWouldBlock or ErrMore.
	ErrFieldMismatch = errors.New("netorder: resumed field width mismatch")
)
