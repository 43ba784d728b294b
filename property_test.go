// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"testing/quick"

	"code.hybscloud.com/awaitlet"
)

// TestPropertyHandOffOrder proves that for any arbitrarily generated
// payload, a blocking function awaiting each element in turn observes
// exactly one dispatch per await, in payload order, and returns its
// final value through the bridge intact.
func TestPropertyHandOffOrder(t *testing.T) {
	propertyOrder := func(payload []int16) bool {
		dispatched := make([]int16, 0, len(payload))
		received := make([]int16, 0, len(payload))

		n, err := awaitlet.AsyncDef(context.Background(), func(a *awaitlet.Awaiter) (int, error) {
			for _, want := range payload {
				got, err := awaitlet.Await(a, awaitlet.AwaitableFunc[int16](func(context.Context) (int16, error) {
					dispatched = append(dispatched, want)
					return want, nil
				}))
				if err != nil {
					return 0, err
				}
				received = append(received, got)
			}
			return len(received), nil
		})
		if err != nil || n != len(payload) {
			return false
		}
		if len(payload) == 0 {
			return len(dispatched) == 0 && len(received) == 0
		}
		return reflect.DeepEqual(dispatched, payload) && reflect.DeepEqual(received, payload)
	}

	if err := quick.Check(propertyOrder, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyErrorAtArbitraryAwait proves that an error raised by the
// awaited operation at any arbitrary suspension index surfaces at that
// exact call site, stops the remaining awaits, and is the very error
// AsyncDef returns.
func TestPropertyErrorAtArbitraryAwait(t *testing.T) {
	propertyError := func(size, at uint8) bool {
		total := int(size%8) + 1
		failAt := int(at) % total

		completed := 0
		_, err := awaitlet.AsyncDef(context.Background(), func(a *awaitlet.Awaiter) (int, error) {
			for i := 0; i < total; i++ {
				_, err := awaitlet.Await(a, awaitlet.AwaitableFunc[int](func(context.Context) (int, error) {
					if i == failAt {
						return 0, errBoom
					}
					completed++
					return i, nil
				}))
				if err != nil {
					return 0, err
				}
			}
			return completed, nil
		})
		return errors.Is(err, errBoom) && completed == failAt
	}

	if err := quick.Check(propertyError, nil); err != nil {
		t.Error(err)
	}
}
