// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package awaitlet bridges blocking-style code and awaitable operations:
// a function written with ordinary sequential control flow can suspend at
// explicit call sites, hand an asynchronous operation to its driver, and
// resume with the result — without being rewritten into callback or
// effect style.
//
// # Architecture
//
//   - Bridge: [AsyncDef] runs a blocking function on a nested execution
//     context (a goroutine parked behind unbuffered hand-off channels so
//     that exactly one side executes at any instant) and trampolines
//     every [Await] suspension on the caller's context.
//   - Capability: [Await] takes an explicit [Awaiter]. Suspension
//     attempts outside a live bridge fail with [ErrNoBridgeContext], and
//     the rejected awaitable is cancelled rather than leaked.
//   - Variables: [Var] context-local variables form one namespace shared
//     across hand-offs in both directions.
//   - Effects: the same awaits are available as algebraic effects on
//     [code.hybscloud.com/kont] for code that cannot take a dedicated
//     nested context. Dual-world API supporting closure-based
//     (Cont-world) and defunctionalized (Expr-world) evaluation.
//
// # API Topologies
//
//   - Bridge world: [AsyncDef], [AsyncDefStrict], [Await], [Awaiter].
//   - Cont-world: [AwaitDone], [AwaitBind], [AwaitThen], [Exec], [Join].
//   - Expr-world: Zero-allocation variants [ExprAwaitDone],
//     [ExprAwaitBind], [ExprAwaitThen], plus [ExecExpr], [RunExpr],
//     [JoinExpr]. Bridge via [Reify] and [Reflect].
//   - Cross-world: [Lift] adapts a blocking function into an [Awaitable];
//     [AsAwaitable] adapts an Expr-world computation.
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative
//     await protocols.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate effect computations one
//     awaited operation at a time. [Advance] is non-blocking and returns
//     [code.hybscloud.com/iox.ErrWouldBlock] while an operation is in
//     flight, making it easy to drive from a proactor loop.
//   - Blocking: [AsyncDef], [Exec] and [ExecExpr] wait inline.
//
// # Example
//
//	greet := awaitlet.AwaitableFunc[string](func(ctx context.Context) (string, error) {
//		return "hello", nil
//	})
//	v, err := awaitlet.AsyncDef(ctx, func(a *awaitlet.Awaiter) (string, error) {
//		return awaitlet.Await(a, greet)
//	})
package awaitlet
