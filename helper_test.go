// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet_test

import (
	"context"
	"errors"

	"code.hybscloud.com/awaitlet"
	"code.hybscloud.com/kont"
)

var errBoom = errors.New("boom")

// value returns an awaitable resolving to v.
func value[T any](v T) awaitlet.Awaitable[T] {
	return awaitlet.AwaitableFunc[T](func(context.Context) (T, error) {
		return v, nil
	})
}

// failing returns an awaitable that fails with err.
func failing[T any](err error) awaitlet.Awaitable[T] {
	return awaitlet.AwaitableFunc[T](func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// panicking returns an awaitable that panics with v when driven.
func panicking[T any](v any) awaitlet.Awaitable[T] {
	return awaitlet.AwaitableFunc[T](func(context.Context) (T, error) {
		panic(v)
	})
}

// blocked returns an awaitable that parks until ctx is cancelled.
func blocked[T any]() awaitlet.Awaitable[T] {
	return awaitlet.AwaitableFunc[T](func(ctx context.Context) (T, error) {
		var zero T
		<-ctx.Done()
		return zero, ctx.Err()
	})
}

// tracked records whether an awaitable was driven or cancelled.
// Used by usage-error tests to prove abandoned awaitables are released.
type tracked struct {
	ran       bool
	cancelled bool
}

func (tr *tracked) Await(context.Context) (int, error) {
	tr.ran = true
	return 1, nil
}

func (tr *tracked) Cancel() {
	tr.cancelled = true
}

// drive evaluates an await computation to completion via the
// Step+Advance loop, retrying on iox.ErrWouldBlock (operation still in
// flight). Used by stepping tests to exercise the non-blocking path.
func drive[R any](ctx context.Context, m kont.Expr[R]) kont.Either[error, R] {
	result, susp := awaitlet.Step(m)
	p := awaitlet.NewPending(ctx)
	for susp != nil {
		var err error
		result, susp, err = awaitlet.Advance(p, susp)
		if err != nil {
			continue
		}
	}
	return result
}
