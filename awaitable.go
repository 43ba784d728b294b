// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"
	"io"
)

// An Awaitable is a unit of asynchronous work: driving it with Await
// yields a value or an error. The bridge never retries or times out an
// awaitable; ctx carries the driver's cancellation.
type Awaitable[T any] interface {
	Await(ctx context.Context) (T, error)
}

// AwaitableFunc adapts a plain function to the [Awaitable] interface.
type AwaitableFunc[T any] func(ctx context.Context) (T, error)

// Await implements [Awaitable].
func (f AwaitableFunc[T]) Await(ctx context.Context) (T, error) { return f(ctx) }

// A Canceler is an [Awaitable] holding resources that must be released
// if the operation is discarded without ever being driven.
type Canceler interface {
	Cancel()
}

// safeCancelAwaitable releases an awaitable that will never be driven,
// so a usage error does not leak the resources behind it.
// Recognizes Cancel and, failing that, Close.
func safeCancelAwaitable(aw any) {
	switch r := aw.(type) {
	case Canceler:
		r.Cancel()
	case io.Closer:
		_ = r.Close()
	}
}
