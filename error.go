// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"
	"errors"
)

var (
	// ErrNoBridgeContext reports an [Await] call whose stack is not
	// rooted in a live [AsyncDef] bridge: the capability is nil, its
	// bridge already finished, or the call was made from driver-side
	// code (including an awaitable driven by the same bridge — nested
	// suspensions are a contract violation). The rejected awaitable is
	// cancelled before this error is returned.
	ErrNoBridgeContext = errors.New("awaitlet: Await called outside a live AsyncDef bridge context")

	// ErrNoSuspensionOccurred reports an [AsyncDefStrict] function that
	// ran to completion without ever suspending.
	ErrNoSuspensionOccurred = errors.New("awaitlet: function completed without suspending")
)

// IsExitError reports whether err is exit-class: a cancellation or
// deadline signal that unwinds the bridge rather than an application
// failure. Exit-class errors are still injected at the suspension call
// site, so deferred cleanup inside the nested context runs before the
// error propagates out of [AsyncDef].
//
// Panics are the remaining exit-class signals; they cross the bridge as
// re-raised [*PanicError] panics, not as error values.
func IsExitError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
