package church

import "github.com/abc401/church/expr"

func I() expr.Expr {
	return expr.Lambda("I", func(x expr.Expr) expr.Expr {
		return x
	})
}

func K() expr.Expr {
	return expr.Lambda2("K", func(x, _ expr.Expr) expr.Expr {
		return x
	})
}

func KI() expr.Expr {
	return expr.Lambda2("KI", func(_, y expr.Expr) expr.Expr {
		return y
	})
}

// B composes: B f g x = f (g x).
func B() expr.Expr {
	return expr.Lambda2("B", func(f, g expr.Expr) expr.Expr {
		return expr.Lambda("B", func(x expr.Expr) expr.Expr {
			return expr.Apply(f, expr.Apply(g, x))
		})
	})
}

// S x y z = x z (y z).
func S() expr.Expr {
	return expr.Lambda2("S", func(x, y expr.Expr) expr.Expr {
		return expr.Lambda("S", func(z expr.Expr) expr.Expr {
			return expr.Apply(expr.Apply(x, z), expr.Apply(y, z))
		})
	})
}

// C flips: C f x y = f y x.
func C() expr.Expr {
	return expr.Lambda2("C", func(f, x expr.Expr) expr.Expr {
		return expr.Lambda("C", func(y expr.Expr) expr.Expr {
			return expr.Apply(expr.Apply(f, y), x)
		})
	})
}
