package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abc401/church/church"
	"github.com/abc401/church/expr"
	"github.com/abc401/church/helpers"
)

type operation struct {
	arity     int
	takesList bool
	eval      func(args []expr.Expr, list expr.Expr) expr.Expr
	decode    func(expr.Expr) (string, error)
}

func unary(fn func(expr.Expr) expr.Expr, decode func(expr.Expr) (string, error)) operation {
	return operation{
		arity: 1,
		eval: func(args []expr.Expr, _ expr.Expr) expr.Expr {
			return fn(args[0])
		},
		decode: decode,
	}
}

func binary(fn func(m, n expr.Expr) expr.Expr, decode func(expr.Expr) (string, error)) operation {
	return operation{
		arity: 2,
		eval: func(args []expr.Expr, _ expr.Expr) expr.Expr {
			return fn(args[0], args[1])
		},
		decode: decode,
	}
}

func listOp(fn func(list expr.Expr) expr.Expr, decode func(expr.Expr) (string, error)) operation {
	return operation{
		takesList: true,
		eval: func(_ []expr.Expr, list expr.Expr) expr.Expr {
			return fn(list)
		},
		decode: decode,
	}
}

var operations = map[string]operation{
	"numeral": unary(func(n expr.Expr) expr.Expr { return n }, decodeNumber),
	"succ":    unary(church.Succ, decodeNumber),
	"pred":    unary(church.Pred, decodeNumber),
	"factorial": unary(func(n expr.Expr) expr.Expr {
		return expr.Apply(church.Factorial(), n)
	}, decodeNumber),
	"is_zero": unary(church.IsZero, decodeBool),

	"add":  binary(church.Add, decodeNumber),
	"sub":  binary(church.Sub, decodeNumber),
	"mult": binary(church.Mult, decodeNumber),
	"pow":  binary(church.Pow, decodeNumber),
	"div":  binary(church.Div, decodeNumber),
	"mod":  binary(church.Mod, decodeNumber),
	"leq":  binary(church.Leq, decodeBool),
	"lt":   binary(church.Lt, decodeBool),
	"eq":   binary(church.Eq, decodeBool),
	"min":  binary(church.Min, decodeNumber),
	"max":  binary(church.Max, decodeNumber),

	"map_succ": listOp(func(list expr.Expr) expr.Expr {
		return church.Map(church.SuccTerm(), list)
	}, decodeList),
	"filter_nonzero": listOp(func(list expr.Expr) expr.Expr {
		return church.Filter(church.NotZeroTerm(), list)
	}, decodeList),
	"sum": listOp(func(list expr.Expr) expr.Expr {
		return church.Fold(church.AddTerm(), church.Zero(), list)
	}, decodeNumber),
	"length":  listOp(church.Length, decodeNumber),
	"reverse": listOp(church.Reverse, decodeList),
}

func decodeNumber(e expr.Expr) (string, error) {
	var value, err = church.ToInt(e)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(value), nil
}

func decodeBool(e expr.Expr) (string, error) {
	var value, err = church.ToBool(e)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(value), nil
}

func decodeList(e expr.Expr) (string, error) {
	var values, err = church.ToInts(e)
	if err != nil {
		return "", err
	}
	return helpers.JoinInts(values), nil
}

type Result struct {
	Op       string `json:"op"`
	Args     []int  `json:"args,omitempty"`
	List     []int  `json:"list,omitempty"`
	Value    string `json:"value"`
	Expected string `json:"expected,omitempty"`
	Matched  bool   `json:"matched"`
}

func (result Result) Label() string {
	var parts = []string{}
	for _, arg := range result.Args {
		parts = append(parts, strconv.Itoa(arg))
	}
	if result.List != nil {
		parts = append(parts, helpers.JoinInts(result.List))
	}
	return result.Op + "(" + strings.Join(parts, ", ") + ")"
}

func Run(scenario *Scenario) ([]Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	var results = make([]Result, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		var result, err = step.run()
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (step Step) run() (Result, error) {
	var op = operations[step.Op]
	var args = make([]expr.Expr, 0, len(step.Args))
	for _, arg := range step.Args {
		args = append(args, church.Numeral(arg))
	}
	var list expr.Expr
	if op.takesList {
		list = church.FromInts(step.List...)
	}

	var value, err = op.decode(op.eval(args, list))
	if err != nil {
		return Result{}, err
	}
	return Result{
		Op:       step.Op,
		Args:     step.Args,
		List:     step.List,
		Value:    value,
		Expected: step.Expect,
		Matched:  step.Expect == "" || step.Expect == value,
	}, nil
}
