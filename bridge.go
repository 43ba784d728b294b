// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"

	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world await computation to Expr-world.
// The resulting Expr can be evaluated with ExecExpr, RunExpr, or
// stepped with Step and Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world await computation to Cont-world.
// The resulting Eff can be evaluated with Exec or Join.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}

// exprAwaitable adapts an Expr-world computation into an Awaitable.
type exprAwaitable[R any] struct {
	m kont.Expr[R]
}

func (e exprAwaitable[R]) Await(ctx context.Context) (R, error) {
	result := ExecExpr(ctx, e.m)
	if err, ok := result.GetLeft(); ok {
		var zero R
		return zero, err
	}
	v, _ := result.GetRight()
	return v, nil
}

// AsAwaitable wraps an Expr-world computation as a single [Awaitable]
// operation, so effect protocols can be awaited from a bridge context.
// Single-use: Expr frames are consumed by evaluation.
func AsAwaitable[R any](m kont.Expr[R]) Awaitable[R] {
	return exprAwaitable[R]{m: m}
}

// liftAwaitable adapts a blocking function into an Awaitable by running
// it on its own bridge when awaited.
type liftAwaitable[T any] struct {
	fn func(*Awaiter) (T, error)
}

func (l liftAwaitable[T]) Await(ctx context.Context) (T, error) {
	return AsyncDef(ctx, l.fn)
}

// Lift wraps a blocking function as an [Awaitable]: awaiting it runs
// the function under [AsyncDef]. Together with [AsAwaitable] this
// composes the two worlds in either direction — blocking code awaited
// from effect computations, effect computations awaited from blocking
// code.
func Lift[T any](fn func(*Awaiter) (T, error)) Awaitable[T] {
	return liftAwaitable[T]{fn: fn}
}
