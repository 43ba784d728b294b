// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"

	"code.hybscloud.com/kont"
)

// awaitHandler implements kont.Handler for await effects.
// Successful awaits resume the computation; an awaited error
// short-circuits, discarding the remainder and answering Left.
type awaitHandler[R any] struct {
	ctx context.Context
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h awaitHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	aop, ok := op.(awaitDispatcher)
	if !ok {
		panic("awaitlet: unhandled effect in awaitHandler")
	}
	v, err := aop.DispatchAwait(h.ctx)
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// Exec runs a Cont-world await computation to completion, driving each
// awaited operation inline on ctx. Returns Either — Right on success,
// Left carrying the first awaited error (use [IsExitError] to tell
// cancellation apart from application failure).
func Exec[R any](ctx context.Context, m kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := awaitHandler[R]{ctx: ctx}
	return kont.Handle(wrapped, h)
}

// ExecExpr runs an Expr-world await computation to completion, driving
// each awaited operation inline on ctx. Returns Either — Right on
// success, Left carrying the first awaited error.
func ExecExpr[R any](ctx context.Context, m kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := awaitHandler[R]{ctx: ctx}
	return kont.HandleExpr(wrapped, h)
}
