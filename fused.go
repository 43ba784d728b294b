// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"code.hybscloud.com/kont"
)

// AwaitDone awaits aw and completes with its value.
func AwaitDone[T any](aw Awaitable[T]) kont.Eff[T] {
	return kont.Perform(AwaitOp[T]{Awaitable: aw})
}

// AwaitBind awaits aw and passes its value to f.
// Fuses Perform(AwaitOp[T]{Awaitable: aw}) + Bind.
func AwaitBind[T, B any](aw Awaitable[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(AwaitOp[T]{Awaitable: aw}), f)
}

// AwaitThen awaits aw, discards its value, and continues with next.
// Fuses Perform(AwaitOp[T]{Awaitable: aw}) + Then.
func AwaitThen[T, B any](aw Awaitable[T], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(AwaitOp[T]{Awaitable: aw}), next)
}
