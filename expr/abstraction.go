package expr

type Abstraction struct {
	Name string
	From func(Expr) Expr
}

func Lambda(name string, from func(Expr) Expr) Expr {
	return &Abstraction{
		Name: name,
		From: from,
	}
}

func Lambda2(name string, from func(x, y Expr) Expr) Expr {
	return Lambda(name, func(x Expr) Expr {
		return Lambda(name, func(y Expr) Expr {
			return from(x, y)
		})
	})
}

// Invoke hands the body the argument carried by cont, not cont itself.
func (abs *Abstraction) Invoke(cont Expr) Expr {
	return abs.From(Unwrap(cont))
}

func (abs *Abstraction) DumpToString() string {
	if abs.Name == "" {
		return "\\x. ..."
	}
	return abs.Name
}
