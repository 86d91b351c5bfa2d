package expr

// Thunk defers a computation until it is forced. The body runs on every
// force; results are not memoized.
type Thunk struct {
	Body func() Expr
}

func Delay(body func() Expr) Expr {
	return &Thunk{Body: body}
}

func (thunk *Thunk) Invoke(_ Expr) Expr {
	return thunk.Body()
}

func (thunk *Thunk) DumpToString() string {
	return "<thunk>"
}

func Force(e Expr) Expr {
	return e.Invoke(Identity())
}
