package church

import "github.com/abc401/church/expr"

// The operations below recurse in Go rather than through Y. Each one branches
// with IfLazy so the tail is only visited when the list is not empty.

func Map(f, list expr.Expr) expr.Expr {
	return IfLazy(IsNil(list), Nil, func() expr.Expr {
		return Cons(expr.Apply(f, Head(list)), Map(f, Tail(list)))
	})
}

func Filter(pred, list expr.Expr) expr.Expr {
	return IfLazy(IsNil(list), Nil, func() expr.Expr {
		var head = Head(list)
		return IfLazy(expr.Apply(pred, head),
			func() expr.Expr {
				return Cons(head, Filter(pred, Tail(list)))
			},
			func() expr.Expr {
				return Filter(pred, Tail(list))
			},
		)
	})
}

// Fold is a left fold: f is applied to the accumulator first, then the element.
func Fold(f, acc, list expr.Expr) expr.Expr {
	return IfLazy(IsNil(list),
		func() expr.Expr {
			return acc
		},
		func() expr.Expr {
			return Fold(f, expr.Apply(expr.Apply(f, acc), Head(list)), Tail(list))
		},
	)
}

func FoldRight(f, acc, list expr.Expr) expr.Expr {
	return IfLazy(IsNil(list),
		func() expr.Expr {
			return acc
		},
		func() expr.Expr {
			return expr.Apply(expr.Apply(f, Head(list)), FoldRight(f, acc, Tail(list)))
		},
	)
}

func Length(list expr.Expr) expr.Expr {
	var count = expr.Lambda2("count", func(acc, _ expr.Expr) expr.Expr {
		return Succ(acc)
	})
	return Fold(count, Zero(), list)
}

func Append(front, back expr.Expr) expr.Expr {
	return FoldRight(ConsTerm(), back, front)
}

func Reverse(list expr.Expr) expr.Expr {
	var push = expr.Lambda2("push", func(acc, item expr.Expr) expr.Expr {
		return Cons(item, acc)
	})
	return Fold(push, Nil(), list)
}

// Index is undefined when n is not smaller than the list's length.
func Index(list, n expr.Expr) expr.Expr {
	return IfLazy(IsZero(n),
		func() expr.Expr {
			return Head(list)
		},
		func() expr.Expr {
			return Index(Tail(list), Pred(n))
		},
	)
}

func Take(list, n expr.Expr) expr.Expr {
	return IfLazy(Or(IsNil(list), IsZero(n)), Nil, func() expr.Expr {
		return Cons(Head(list), Take(Tail(list), Pred(n)))
	})
}

func Drop(list, n expr.Expr) expr.Expr {
	return IfLazy(Or(IsNil(list), IsZero(n)),
		func() expr.Expr {
			return list
		},
		func() expr.Expr {
			return Drop(Tail(list), Pred(n))
		},
	)
}

// Slice keeps the elements at positions start up to, not including, end.
func Slice(list, start, end expr.Expr) expr.Expr {
	return Take(Drop(list, start), Sub(end, start))
}
