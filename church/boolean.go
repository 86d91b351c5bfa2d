// Package church builds booleans, numerals, pairs, lists and recursion out of
// nothing but expr terms and Apply.
package church

import "github.com/abc401/church/expr"

func True() expr.Expr {
	return expr.Lambda2("true", func(x, _ expr.Expr) expr.Expr {
		return x
	})
}

func False() expr.Expr {
	return expr.Lambda2("false", func(_, y expr.Expr) expr.Expr {
		return y
	})
}

// If builds both branches; only the one matching cond is returned.
func If(cond, then, otherwise expr.Expr) expr.Expr {
	return expr.Apply(expr.Apply(cond, then), otherwise)
}

// IfLazy lets cond pick one of two delayed branches and forces only that one.
// Use it whenever a branch recurses.
func IfLazy(cond expr.Expr, then, otherwise func() expr.Expr) expr.Expr {
	return expr.Force(If(cond, expr.Delay(then), expr.Delay(otherwise)))
}

func And(a, b expr.Expr) expr.Expr {
	return If(a, b, False())
}

func Or(a, b expr.Expr) expr.Expr {
	return If(a, True(), b)
}

func Not(b expr.Expr) expr.Expr {
	return If(b, False(), True())
}

func Xor(a, b expr.Expr) expr.Expr {
	return If(a, Not(b), b)
}
