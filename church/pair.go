package church

import "github.com/abc401/church/expr"

func Pair(x, y expr.Expr) expr.Expr {
	return expr.Lambda("pair", func(f expr.Expr) expr.Expr {
		return expr.Apply(expr.Apply(f, x), y)
	})
}

func First(p expr.Expr) expr.Expr {
	return expr.Apply(p, True())
}

func Second(p expr.Expr) expr.Expr {
	return expr.Apply(p, False())
}
