// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awaitlet_test

import (
	"context"
	"testing"

	"code.hybscloud.com/awaitlet"
)

func bridgeSerial(tb testing.TB) awaitlet.Serial {
	tb.Helper()
	var s awaitlet.Serial
	if _, err := awaitlet.AsyncDef(context.Background(), func(a *awaitlet.Awaiter) (struct{}, error) {
		s = a.Serial()
		return struct{}{}, nil
	}); err != nil {
		tb.Fatal(err)
	}
	return s
}

func TestSerialMonotonic(t *testing.T) {
	s1 := bridgeSerial(t)
	s2 := bridgeSerial(t)
	s3 := bridgeSerial(t)

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}
