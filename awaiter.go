// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"

	"code.hybscloud.com/atomix"
)

// Awaiter status word. Transitions: running→awaiting on suspension,
// awaiting→running on resumption, any→finished on completion. Once
// finished, an Awaiter never becomes live again.
const (
	bridgeRunning uint32 = iota
	bridgeAwaiting
	bridgeFinished
)

// switchValue is the nested→driver hand-off payload: either a request
// to drive an awaitable, or the completion of the nested context.
// Transient; never retained after a hand-off completes.
type switchValue struct {
	await func(ctx context.Context) (any, error)
	done  bool
}

// resumeValue is the driver→nested hand-off payload: the outcome of the
// most recently requested awaitable. A non-nil panicked means the
// awaitable panicked while the driver ran it; the panic re-raises at
// the [Await] call site.
type resumeValue struct {
	value    any
	err      error
	panicked *PanicError
}

// An Awaiter is the suspension capability of one nested execution
// context. [AsyncDef] passes it to the blocking function; [Await] uses
// it to suspend exactly that context. It is owned by the blocking
// function's call stack and must not be shared with other goroutines
// while the bridge is live.
//
// The unbuffered hand-off channels keep execution strictly alternating:
// whichever side performs a send parks until the other side is at the
// matching receive, so the driver and the nested context never run
// concurrently.
type Awaiter struct {
	serial  Serial
	status  atomix.Uint32
	suspend chan switchValue
	resume  chan resumeValue
	ctx     context.Context
}

func newAwaiter(ctx context.Context) *Awaiter {
	return &Awaiter{
		serial:  nextSerial(),
		suspend: make(chan switchValue),
		resume:  make(chan resumeValue),
		ctx:     ctx,
	}
}

// Serial returns the serial number assigned to this bridge.
func (a *Awaiter) Serial() Serial {
	return a.serial
}

// Context returns the driver's context as observed from inside the
// nested execution context. It carries the driver's cancellation and
// the bridge's variable store, so [Var] reads and writes made on either
// side of a hand-off land in the same namespace.
func (a *Awaiter) Context() context.Context {
	return a.ctx
}

// Await suspends the calling nested execution context, delegates aw to
// the owning bridge driver, and returns its resolved value once the
// driver switches back — or the error the driver injects, raised as if
// the operation had failed right here.
//
// Await is only valid while a is the currently running context of a
// live [AsyncDef] bridge. One suspension may be in flight per context:
// calling Await from driver-side code, from an awaitable driven by the
// same bridge, or after the bridge finished is a usage error. The
// awaitable is then cancelled without being driven and
// [ErrNoBridgeContext] is returned.
//
// A panic inside aw re-raises here as a [*PanicError], so deferred
// cleanup in the calling function runs before the panic crosses back
// to the driver side. The function may also recover it and continue.
func Await[T any](a *Awaiter, aw Awaitable[T]) (T, error) {
	var zero T
	if aw == nil {
		panic("awaitlet: nil awaitable")
	}
	if a == nil || !a.status.CompareAndSwap(bridgeRunning, bridgeAwaiting) {
		safeCancelAwaitable(aw)
		return zero, ErrNoBridgeContext
	}
	a.suspend <- switchValue{await: func(ctx context.Context) (any, error) {
		return aw.Await(ctx)
	}}
	rv := <-a.resume
	a.status.Store(bridgeRunning)
	if rv.panicked != nil {
		panic(rv.panicked)
	}
	if rv.err != nil {
		return zero, rv.err
	}
	if rv.value == nil {
		return zero, nil
	}
	return rv.value.(T), nil
}
