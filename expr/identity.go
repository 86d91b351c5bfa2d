package expr

type identity struct{}

func Identity() Expr {
	return identity{}
}

func (identity) Invoke(cont Expr) Expr {
	return cont
}

func (identity) DumpToString() string {
	return "I"
}

// Constant is the continuation synthesized by Apply. It yields Value no
// matter what it is invoked with.
type Constant struct {
	Value Expr
}

func (constant *Constant) Invoke(_ Expr) Expr {
	return constant.Value
}

func (constant *Constant) DumpToString() string {
	return "(\\_. " + constant.Value.DumpToString() + ")"
}

// Unwrap strips one layer of continuation wrapping.
func Unwrap(cont Expr) Expr {
	return cont.Invoke(Identity())
}
