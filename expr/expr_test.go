package expr

import "testing"

type marker string

func (m marker) Invoke(_ Expr) Expr { return m }
func (m marker) DumpToString() string { return string(m) }

func TestApplyPassesArgument(t *testing.T) {
	var got Expr
	var f = Lambda("f", func(x Expr) Expr {
		got = x
		return x
	})
	var result = Apply(f, marker("a"))
	if got != marker("a") {
		t.Fatalf("body saw %v, expected marker a", got)
	}
	if result != marker("a") {
		t.Fatalf("expected marker a, got %v", result)
	}
}

func TestConstantIgnoresArgument(t *testing.T) {
	var c = &Constant{Value: marker("kept")}
	if c.Invoke(marker("dropped")) != marker("kept") {
		t.Fatal("constant continuation should yield its value")
	}
	if Unwrap(c) != marker("kept") {
		t.Fatal("unwrap should yield the constant's value")
	}
}

func TestIdentity(t *testing.T) {
	if Identity().Invoke(marker("x")) != marker("x") {
		t.Fatal("identity should return its argument")
	}
}

func TestLambda2(t *testing.T) {
	var second = Lambda2("second", func(_, y Expr) Expr {
		return y
	})
	if Apply(Apply(second, marker("a")), marker("b")) != marker("b") {
		t.Fatal("expected second argument")
	}
}

func TestSuspendDefersApplication(t *testing.T) {
	var calls = 0
	var f = Lambda("f", func(x Expr) Expr {
		calls++
		return Lambda("g", func(y Expr) Expr {
			return y
		})
	})
	var app = Suspend(f, marker("a"))
	if calls != 0 {
		t.Fatalf("suspend evaluated eagerly: %d calls", calls)
	}
	if Apply(app, marker("b")) != marker("b") {
		t.Fatal("suspended application should behave like the applied term")
	}
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	Apply(app, marker("c"))
	if calls != 2 {
		t.Fatalf("expected re-evaluation on each invoke, got %d calls", calls)
	}
}

func TestDelayAndForce(t *testing.T) {
	var forced = false
	var thunk = Delay(func() Expr {
		forced = true
		return marker("done")
	})
	if forced {
		t.Fatal("delay ran its body")
	}
	if Force(thunk) != marker("done") {
		t.Fatal("force should return the body's result")
	}
	if !forced {
		t.Fatal("force did not run the body")
	}
}

func TestDumpToString(t *testing.T) {
	var f = Lambda("f", func(x Expr) Expr { return x })
	var tests = []struct {
		expr     Expr
		expected string
	}{
		{Identity(), "I"},
		{f, "f"},
		{Lambda("", func(x Expr) Expr { return x }), "\\x. ..."},
		{&Constant{Value: f}, "(\\_. f)"},
		{Suspend(f, marker("a")), "f a"},
		{Suspend(f, Suspend(f, marker("a"))), "f (f a)"},
		{Delay(func() Expr { return f }), "<thunk>"},
	}
	for _, tt := range tests {
		if got := tt.expr.DumpToString(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
