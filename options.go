// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netorder

import "time"

// Options configures a field Reader or Writer.
type Options struct {
	// RetryDelay decides what happens when the transport reports iox.ErrWouldBlock
	// before the current field is complete. A negative value hands ErrWouldBlock
	// back to the caller with the partial field kept. Zero yields the processor
	// and tries again. A positive value sleeps that long before trying again.
	RetryDelay time.Duration
}

var defaultOptions = Options{
	RetryDelay: -1, // default: nonblock
}

type Option func(*Options)

// WithRetryDelay sets Options.RetryDelay for a field Reader or Writer.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock makes each Read or Write call finish its field, yielding between
// attempts that would block.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock returns ErrWouldBlock as soon as a field stalls. This is the default.
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

func buildOptions(opts []Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
