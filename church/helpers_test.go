package church

import (
	"reflect"
	"testing"

	"github.com/abc401/church/expr"
)

func testInt(t *testing.T, n expr.Expr, expected int) {
	t.Helper()
	var got, err = ToInt(n)
	if err != nil {
		t.Fatalf("decode numeral: %v", err)
	}
	if got != expected {
		t.Fatalf("expected %d, got %d", expected, got)
	}
}

func testBool(t *testing.T, b expr.Expr, expected bool) {
	t.Helper()
	var got, err = ToBool(b)
	if err != nil {
		t.Fatalf("decode boolean: %v", err)
	}
	if got != expected {
		t.Fatalf("expected %t, got %t", expected, got)
	}
}

func testInts(t *testing.T, list expr.Expr, expected []int) {
	t.Helper()
	var got, err = ToInts(list)
	if err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
