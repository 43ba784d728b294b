// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// Step evaluates an await computation until the first suspension.
// Returns (result, nil) on completion, or (zero, suspension) when an
// awaitable is pending dispatch.
func Step[R any](m kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// outcome is the completion record of a dispatched awaitable. A
// non-nil panicked means the awaitable panicked in the worker; it
// re-raises on the goroutine that consumes the completion.
type outcome struct {
	value    kont.Resumed
	err      error
	panicked *PanicError
}

// A Pending dispatches suspended awaitables to a background worker and
// publishes each completion through a bounded lock-free SPSC queue, so
// that [Advance] stays non-blocking. At most one operation is in
// flight; the busy flag enforces single dispatch per suspension.
type Pending struct {
	ctx  context.Context
	busy atomix.Uint32
	q    lfq.SPSC[outcome]
}

// completionCapacity bounds the completion queue. One operation is in
// flight at a time; 2 keeps a free slot regardless of how the ring
// accounts for the full/empty boundary.
const completionCapacity = 2

// NewPending creates a dispatch context for [Advance], driving
// awaitables on ctx.
func NewPending(ctx context.Context) *Pending {
	p := &Pending{ctx: ctx}
	p.q.Init(completionCapacity)
	return p
}

// Advance makes non-blocking progress on a suspended await computation.
//
// The first call for a suspension dispatches its awaitable to a
// background worker and returns iox.ErrWouldBlock immediately.
// Further calls keep returning iox.ErrWouldBlock until the operation
// completes; the suspension stays unconsumed and must be retried.
//
// On completion, a successful value resumes the computation and Advance
// returns the next suspension or the final result. An awaited error
// discards the suspension and returns Left. A panicking awaitable
// discards the suspension and re-raises here as a [*PanicError].
func Advance[R any](p *Pending, susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	var zero kont.Either[error, R]
	if p.busy.CompareAndSwap(0, 1) {
		aop, ok := susp.Op().(awaitDispatcher)
		if !ok {
			p.busy.Store(0)
			panic("awaitlet: unhandled effect in Advance")
		}
		go func() {
			var o outcome
			defer func() {
				if v := recover(); v != nil {
					// A panic on the bare worker goroutine would
					// crash the process; carry it to the consumer.
					o = outcome{panicked: newPanicError(v)}
				}
				// Single in-flight operation: the enqueue cannot
				// find the queue full.
				_ = p.q.Enqueue(&o)
			}()
			o.value, o.err = aop.DispatchAwait(p.ctx)
		}()
		return zero, susp, iox.ErrWouldBlock
	}
	o, err := p.q.Dequeue()
	if err != nil {
		return zero, susp, iox.ErrWouldBlock
	}
	p.busy.Store(0)
	if o.panicked != nil {
		susp.Discard()
		panic(o.panicked)
	}
	if o.err != nil {
		susp.Discard()
		return kont.Left[error, R](o.err), nil, nil
	}
	result, next := susp.Resume(o.value)
	return result, next, nil
}
