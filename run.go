// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// RunExpr drives an Expr-world await computation to completion on the
// calling goroutine through the stepping boundary, waiting out each
// in-flight operation with adaptive backoff (iox.Backoff).
//
// [ExecExpr] awaits inline and is the cheaper blocking path; RunExpr
// exercises the same [Step]/[Advance] protocol a proactor loop would.
func RunExpr[R any](ctx context.Context, m kont.Expr[R]) kont.Either[error, R] {
	result, susp := Step(m)
	if susp == nil {
		return result
	}
	p := NewPending(ctx)
	var bo iox.Backoff
	for susp != nil {
		var err error
		result, susp, err = Advance(p, susp)
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
	}
	return result
}

// Join interleaves two Cont-world await computations on the calling
// goroutine and returns both results.
func Join[A, B any](ctx context.Context, a kont.Eff[A], b kont.Eff[B]) (kont.Either[error, A], kont.Either[error, B]) {
	return JoinExpr(ctx, Reify(a), Reify(b))
}

// JoinExpr interleaves two Expr-world await computations on the calling
// goroutine: their awaited operations overlap in flight while all
// resumptions stay on this goroutine. Waits with adaptive backoff
// (iox.Backoff) when neither side can make progress.
func JoinExpr[A, B any](ctx context.Context, a kont.Expr[A], b kont.Expr[B]) (kont.Either[error, A], kont.Either[error, B]) {
	resultA, suspA := Step(a)
	resultB, suspB := Step(b)
	pa := NewPending(ctx)
	pb := NewPending(ctx)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = Advance(pa, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = Advance(pb, suspB)
			if err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
