// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"
	"fmt"
)

// varStore is the context-local variable namespace of one logical task.
// It is deliberately unsynchronized: ownership alternates with each
// hand-off, and the hand-off channels provide the ordering edges, so
// only one side of a bridge ever touches it at a time.
type varStore struct {
	vals map[any]any
}

type varStoreKey struct{}

// WithVars binds a fresh context-local variable store to ctx. Hosts
// bind one at logical-task start; [AsyncDef] binds one automatically
// when the incoming context carries none, and shares the existing store
// otherwise, so nested bridges see one continuous namespace.
func WithVars(ctx context.Context) context.Context {
	return context.WithValue(ctx, varStoreKey{}, &varStore{vals: make(map[any]any)})
}

func varsOf(ctx context.Context) *varStore {
	s, _ := ctx.Value(varStoreKey{}).(*varStore)
	return s
}

// A Var is a typed context-local variable: state scoped to a logical
// task rather than a goroutine. Writes made on either side of a bridge
// hand-off are visible on the other side afterwards, because both sides
// resolve the same store through their context.
type Var[T any] struct {
	name string
}

// NewVar declares a context-local variable. The name is diagnostic
// only; identity is the returned pointer.
func NewVar[T any](name string) *Var[T] {
	return &Var[T]{name: name}
}

// Name returns the diagnostic name of v.
func (v *Var[T]) Name() string { return v.name }

// Get retrieves the value of v in ctx's store. The second result is
// false when v was never set or ctx carries no store.
func (v *Var[T]) Get(ctx context.Context) (T, bool) {
	var zero T
	s := varsOf(ctx)
	if s == nil {
		return zero, false
	}
	val, ok := s.vals[v]
	if !ok {
		return zero, false
	}
	return val.(T), true
}

// Set updates the value of v in ctx's store.
// Panics if ctx carries no store; bind one with [WithVars] or call
// within an [AsyncDef] bridge.
func (v *Var[T]) Set(ctx context.Context, val T) {
	s := varsOf(ctx)
	if s == nil {
		panic(fmt.Sprintf("awaitlet: Set on variable %q without a bound store", v.name))
	}
	s.vals[v] = val
}
