package church

import "github.com/abc401/church/expr"

// A maybe is a pair tagged true when it holds a value.

func Some(x expr.Expr) expr.Expr {
	return Pair(True(), x)
}

func None() expr.Expr {
	return Pair(False(), Nil())
}

func IsSome(m expr.Expr) expr.Expr {
	return First(m)
}

func IsNone(m expr.Expr) expr.Expr {
	return Not(IsSome(m))
}

// MaybeMap applies f only when m holds a value.
func MaybeMap(f, m expr.Expr) expr.Expr {
	return IfLazy(IsSome(m),
		func() expr.Expr {
			return Some(expr.Apply(f, Second(m)))
		},
		None,
	)
}

// FromMaybe yields the held value, or fallback for None.
func FromMaybe(m, fallback expr.Expr) expr.Expr {
	return If(IsSome(m), Second(m), fallback)
}
