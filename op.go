// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"

	"code.hybscloud.com/kont"
)

// AwaitOp is the effect operation for awaiting an [Awaitable].
// Perform(AwaitOp[T]{Awaitable: aw}) suspends the computation until the
// handler has driven aw to completion.
type AwaitOp[T any] struct {
	kont.Phantom[T]
	Awaitable Awaitable[T]
}

// DispatchAwait drives the carried awaitable on ctx. The operation's
// value or error becomes the dispatch outcome; classification of the
// error (application vs exit-class) is the caller's concern.
func (op AwaitOp[T]) DispatchAwait(ctx context.Context) (kont.Resumed, error) {
	v, err := op.Awaitable.Await(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// awaitDispatcher is the structural interface for await operations.
type awaitDispatcher interface {
	DispatchAwait(ctx context.Context) (kont.Resumed, error)
}
