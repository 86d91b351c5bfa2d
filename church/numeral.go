package church

import (
	"log"

	"github.com/abc401/church/expr"
)

func Zero() expr.Expr {
	return expr.Lambda2("zero", func(_, x expr.Expr) expr.Expr {
		return x
	})
}

func Succ(n expr.Expr) expr.Expr {
	return expr.Lambda2("succ", func(f, x expr.Expr) expr.Expr {
		return expr.Apply(f, expr.Apply(expr.Apply(n, f), x))
	})
}

func Numeral(value int) expr.Expr {
	if value < 0 {
		log.Panicf("[Panic] Tried to build a numeral from a negative integer: %d", value)
	}
	var n = Zero()
	for i := 0; i < value; i++ {
		n = Succ(n)
	}
	return n
}

func Add(m, n expr.Expr) expr.Expr {
	return expr.Lambda2("add", func(f, x expr.Expr) expr.Expr {
		return expr.Apply(expr.Apply(m, f), expr.Apply(expr.Apply(n, f), x))
	})
}

// Mult uses n applications of f as the function m iterates.
func Mult(m, n expr.Expr) expr.Expr {
	return expr.Lambda2("mult", func(f, x expr.Expr) expr.Expr {
		return expr.Apply(expr.Apply(m, expr.Apply(n, f)), x)
	})
}

// Pow is m to the power n.
func Pow(m, n expr.Expr) expr.Expr {
	return expr.Lambda2("pow", func(f, x expr.Expr) expr.Expr {
		return expr.Apply(expr.Apply(expr.Apply(n, m), f), x)
	})
}

// Pred shifts the pair (prev, current) n times from (zero, zero) and keeps
// prev. Pred(Zero()) is zero.
func Pred(n expr.Expr) expr.Expr {
	var shift = expr.Lambda("shift", func(p expr.Expr) expr.Expr {
		var current = Second(p)
		return Pair(current, Succ(current))
	})
	return First(expr.Apply(expr.Apply(n, shift), Pair(Zero(), Zero())))
}

// Sub saturates at zero when n > m.
func Sub(m, n expr.Expr) expr.Expr {
	return expr.Apply(expr.Apply(n, PredTerm()), m)
}

// Div is floor division by repeated subtraction. Dividing by zero yields zero.
func Div(m, n expr.Expr) expr.Expr {
	return IfLazy(IsZero(n), Zero, func() expr.Expr {
		return IfLazy(Lt(m, n), Zero, func() expr.Expr {
			return Succ(Div(Sub(m, n), n))
		})
	})
}

// Mod yields zero for a zero divisor, like Div.
func Mod(m, n expr.Expr) expr.Expr {
	return IfLazy(IsZero(n), Zero, func() expr.Expr {
		return IfLazy(Lt(m, n),
			func() expr.Expr {
				return m
			},
			func() expr.Expr {
				return Mod(Sub(m, n), n)
			},
		)
	})
}

func SuccTerm() expr.Expr {
	return expr.Lambda("succ", Succ)
}

func PredTerm() expr.Expr {
	return expr.Lambda("pred", Pred)
}

func AddTerm() expr.Expr {
	return expr.Lambda2("add", Add)
}

func MultTerm() expr.Expr {
	return expr.Lambda2("mult", Mult)
}
