// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import "context"

// AsyncDef runs the blocking function fn to completion on a fresh
// nested execution context, transparently satisfying every [Await]
// suspension it issues, and returns fn's final value or error to the
// caller.
//
// The driver loop is a trampoline: the nested context never touches
// asynchronous machinery itself, it only hands opaque awaitables up
// through its [Awaiter]; AsyncDef drives each one with ctx and switches
// the outcome back in. A resume always answers exactly the most recent
// suspension.
//
// Errors from awaited operations, including exit-class cancellation
// and deadline errors (see [IsExitError]), are injected at the [Await]
// call site, so the nested context's deferred cleanup runs before
// anything propagates out of AsyncDef. A panic inside fn crosses the
// bridge and re-raises on the driver side as a [*PanicError]. A panic
// inside an awaited operation travels the other way first: it is
// injected at the [Await] call site so the nested context unwinds its
// deferred cleanup, then re-raises here.
//
// Call arguments are captured by closure. If ctx carries no variable
// store yet, AsyncDef binds a fresh one; otherwise the nested context
// shares the caller's store (see [WithVars]).
func AsyncDef[T any](ctx context.Context, fn func(*Awaiter) (T, error)) (T, error) {
	return asyncDef(ctx, fn, false)
}

// AsyncDefStrict is [AsyncDef] with the must-suspend contract: if fn
// runs to completion without a single [Await], the call fails with
// [ErrNoSuspensionOccurred]. An error from fn itself takes precedence.
func AsyncDefStrict[T any](ctx context.Context, fn func(*Awaiter) (T, error)) (T, error) {
	return asyncDef(ctx, fn, true)
}

func asyncDef[T any](ctx context.Context, fn func(*Awaiter) (T, error), mustSuspend bool) (T, error) {
	if fn == nil {
		panic("awaitlet: nil function")
	}
	if varsOf(ctx) == nil {
		ctx = WithVars(ctx)
	}
	a := newAwaiter(ctx)

	var (
		result  T
		fnErr   error
		fnPanic *PanicError
	)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				if pe, ok := p.(*PanicError); ok {
					// An injected awaitable panic that fn did not
					// recover; keep the original capture.
					fnPanic = pe
				} else {
					fnPanic = newPanicError(p)
				}
			}
			a.status.Store(bridgeFinished)
			a.suspend <- switchValue{done: true}
		}()
		result, fnErr = fn(a)
	}()

	// First switch starts the context; each later one answers a
	// suspension. The receive parks the driver while the nested
	// context runs, and vice versa.
	suspended := false
	sv := <-a.suspend
	for !sv.done {
		suspended = true
		a.resume <- driveAwaitable(ctx, sv.await)
		sv = <-a.suspend
	}

	if fnPanic != nil {
		panic(fnPanic)
	}
	var zero T
	if fnErr != nil {
		return zero, fnErr
	}
	if mustSuspend && !suspended {
		return zero, ErrNoSuspensionOccurred
	}
	return result, nil
}

// driveAwaitable runs one suspended awaitable on the driver side. A
// panic is captured rather than unwinding the driver: it must be
// injected back through the hand-off, or the nested context would stay
// parked at its resume receive forever.
func driveAwaitable(ctx context.Context, await func(context.Context) (any, error)) (rv resumeValue) {
	defer func() {
		if p := recover(); p != nil {
			rv = resumeValue{panicked: newPanicError(p)}
		}
	}()
	rv.value, rv.err = await(ctx)
	return rv
}
