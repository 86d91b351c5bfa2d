package expr

func Apply(of, to Expr) Expr {
	return of.Invoke(&Constant{Value: to})
}

// Application is an application that has not happened yet. It is evaluated
// every time it is invoked, which makes it usable as the eta-expanded
// self-application of a fixed-point combinator.
type Application struct {
	Of Expr
	To Expr
}

func Suspend(of, to Expr) Expr {
	return &Application{
		Of: of,
		To: to,
	}
}

func (app *Application) Eval() Expr {
	return Apply(app.Of, app.To)
}

func (app *Application) Invoke(cont Expr) Expr {
	return app.Eval().Invoke(cont)
}

func (app *Application) DumpToString() string {
	var abs, ok = app.Of.(*Abstraction)
	if ok && abs.Name == "" {
		return "(" + app.Of.DumpToString() + ") " + app.To.DumpToString()
	}
	_, ok = app.To.(*Application)
	if ok {
		return app.Of.DumpToString() + " (" + app.To.DumpToString() + ")"
	}
	return app.Of.DumpToString() + " " + app.To.DumpToString()
}
