package church

import "github.com/abc401/church/expr"

// A list is a pair whose first slot tags emptiness. Nil carries true there
// and every Cons carries false.

func Nil() expr.Expr {
	return Pair(True(), True())
}

func Cons(head, tail expr.Expr) expr.Expr {
	return Pair(False(), Pair(head, tail))
}

func IsNil(list expr.Expr) expr.Expr {
	return First(list)
}

func Head(list expr.Expr) expr.Expr {
	return First(Second(list))
}

func Tail(list expr.Expr) expr.Expr {
	return Second(Second(list))
}

func ConsTerm() expr.Expr {
	return expr.Lambda2("cons", Cons)
}
