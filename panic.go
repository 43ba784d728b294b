// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"fmt"
	"runtime/debug"
)

// A PanicError carries a panic across a bridge hand-off, preserving the
// panicked value and the stack captured at recovery time. A panic in
// the nested execution context re-raises on the driver side when
// [AsyncDef] returns; a panic in an awaited operation re-raises first
// at the [Await] call site, then crosses back if unrecovered.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

// Value returns the value originally passed to panic.
func (p *PanicError) Value() any { return p.value }

func (p *PanicError) Error() string {
	return fmt.Sprintf("awaitlet: panic in bridge context: %v", p.value)
}

// ErrorWithStack formats the panic together with the nested execution
// context's stack captured at recovery time.
func (p *PanicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

// Unwrap exposes the panicked value for errors.Is/As when it is itself
// an error.
func (p *PanicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}
