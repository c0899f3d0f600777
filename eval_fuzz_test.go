package arith_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-(1)")
	f.Add("3--2")
	f.Add("((1/3))")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := arith.Evaluate(s)
		if err != nil {
			var e *arith.Error
			if !errors.As(err, &e) {
				t.Fatalf("%q: error %#v is not *arith.Error", s, err)
			}
			return
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%q: non-finite result %g without error", s, v)
		}
	})
}
