package church

import "github.com/abc401/church/expr"

// Y is λf. s s with s = λx. f (x x). The inner x x is suspended: under strict
// evaluation an eager self-application would never return.
func Y() expr.Expr {
	return expr.Lambda("Y", func(f expr.Expr) expr.Expr {
		var self = expr.Lambda("self", func(x expr.Expr) expr.Expr {
			return expr.Apply(f, expr.Suspend(x, x))
		})
		return expr.Apply(self, self)
	})
}

func Fix(f expr.Expr) expr.Expr {
	return expr.Apply(Y(), f)
}

func Factorial() expr.Expr {
	return Fix(expr.Lambda2("factorial", func(recur, n expr.Expr) expr.Expr {
		return IfLazy(IsZero(n),
			func() expr.Expr {
				return Succ(Zero())
			},
			func() expr.Expr {
				return Mult(n, expr.Apply(recur, Pred(n)))
			},
		)
	}))
}
