// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame, avoiding a heap
// escape when boxing the empty ReturnFrame into kont.Frame.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprAwaitDone awaits aw and completes with its value.
// Fuses ExprPerform(AwaitOp[T]{Awaitable: aw}) + ExprReturn.
func ExprAwaitDone[T any](aw Awaitable[T]) kont.Expr[T] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = AwaitOp[T]{Awaitable: aw}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[T](ef)
}

func awaitBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind awaits aw and passes its value to f.
// Fuses ExprPerform(AwaitOp[T]{Awaitable: aw}) + ExprBind.
func ExprAwaitBind[T, B any](aw Awaitable[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = AwaitOp[T]{Awaitable: aw}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprAwaitThen awaits aw, discards its value, and continues with next.
// Fuses ExprPerform(AwaitOp[T]{Awaitable: aw}) + ExprThen.
func ExprAwaitThen[T, B any](aw Awaitable[T], next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = AwaitOp[T]{Awaitable: aw}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}
