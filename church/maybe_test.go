package church

import (
	"testing"

	"github.com/abc401/church/expr"
)

func TestSomeAndNone(t *testing.T) {
	testBool(t, IsSome(Some(Numeral(3))), true)
	testBool(t, IsNone(Some(Numeral(3))), false)
	testBool(t, IsSome(None()), false)
	testBool(t, IsNone(None()), true)
}

func TestMaybeMap(t *testing.T) {
	var mapped = MaybeMap(SuccTerm(), Some(Numeral(3)))
	testBool(t, IsSome(mapped), true)
	testInt(t, FromMaybe(mapped, Zero()), 4)

	testBool(t, IsNone(MaybeMap(SuccTerm(), None())), true)
}

func TestMaybeMapSkipsFunctionOnNone(t *testing.T) {
	var calls = 0
	var f = expr.Lambda("count", func(x expr.Expr) expr.Expr {
		calls++
		return x
	})
	MaybeMap(f, None())
	if calls != 0 {
		t.Fatalf("expected f not to run on None, ran %d times", calls)
	}
}

func TestFromMaybe(t *testing.T) {
	testInt(t, FromMaybe(Some(Numeral(2)), Numeral(9)), 2)
	testInt(t, FromMaybe(None(), Numeral(9)), 9)
}
