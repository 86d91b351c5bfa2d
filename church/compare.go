package church

import "github.com/abc401/church/expr"

// IsZero relies on zero never invoking its function argument.
func IsZero(n expr.Expr) expr.Expr {
	var alwaysFalse = expr.Lambda("always-false", func(_ expr.Expr) expr.Expr {
		return False()
	})
	return expr.Apply(expr.Apply(n, alwaysFalse), True())
}

func Leq(m, n expr.Expr) expr.Expr {
	return IsZero(Sub(m, n))
}

func Geq(m, n expr.Expr) expr.Expr {
	return Leq(n, m)
}

func Lt(m, n expr.Expr) expr.Expr {
	return Not(Leq(n, m))
}

func Gt(m, n expr.Expr) expr.Expr {
	return Lt(n, m)
}

func Eq(m, n expr.Expr) expr.Expr {
	return And(Leq(m, n), Leq(n, m))
}

func Min(m, n expr.Expr) expr.Expr {
	return If(Leq(m, n), m, n)
}

func Max(m, n expr.Expr) expr.Expr {
	return If(Leq(m, n), n, m)
}

func IsZeroTerm() expr.Expr {
	return expr.Lambda("is-zero", IsZero)
}

func NotZeroTerm() expr.Expr {
	return expr.Lambda("not-zero", func(n expr.Expr) expr.Expr {
		return Not(IsZero(n))
	})
}
