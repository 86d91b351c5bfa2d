package expr

// Expr is the single runtime representation of every term. A term receives
// one continuation and produces another term.
type Expr interface {
	Invoke(cont Expr) Expr
	DumpToString() string
}
