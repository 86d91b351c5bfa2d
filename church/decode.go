package church

import (
	"fmt"
	"log"
	"strconv"

	"github.com/abc401/church/expr"
)

// counter and hostBool are host values dressed up as terms so decoding can
// thread them through applications without mutating anything.

type counter int

func (c counter) Invoke(_ expr.Expr) expr.Expr {
	return c
}

func (c counter) DumpToString() string {
	return strconv.Itoa(int(c))
}

type hostBool bool

func (b hostBool) Invoke(_ expr.Expr) expr.Expr {
	return b
}

func (b hostBool) DumpToString() string {
	return strconv.FormatBool(bool(b))
}

func ToInt(n expr.Expr) (int, error) {
	var increment = expr.Lambda("increment", func(x expr.Expr) expr.Expr {
		var c, ok = x.(counter)
		if !ok {
			return x
		}
		return c + 1
	})
	var result = expr.Apply(expr.Apply(n, increment), counter(0))
	var c, ok = result.(counter)
	if !ok {
		return 0, fmt.Errorf("%w: decoded to %s", ErrNotNumeral, result.DumpToString())
	}
	return int(c), nil
}

func ChurchToInt(n expr.Expr) int {
	var value, err = ToInt(n)
	if err != nil {
		log.Panicf("[Panic] %s", err.Error())
	}
	return value
}

func ToBool(b expr.Expr) (bool, error) {
	var result = expr.Apply(expr.Apply(b, hostBool(true)), hostBool(false))
	var value, ok = result.(hostBool)
	if !ok {
		return false, fmt.Errorf("%w: decoded to %s", ErrNotBoolean, result.DumpToString())
	}
	return bool(value), nil
}

// ToSlice walks list until IsNil decodes to true. It cannot tell a list from
// every other term: anything whose first slot selects true, Zero included,
// comes back as an empty slice with no error.
func ToSlice(list expr.Expr) ([]expr.Expr, error) {
	var items = []expr.Expr{}
	for {
		var empty, err = ToBool(IsNil(list))
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrNotList, len(items), err)
		}
		if empty {
			return items, nil
		}
		items = append(items, Head(list))
		list = Tail(list)
	}
}

func ToInts(list expr.Expr) ([]int, error) {
	var items, err = ToSlice(list)
	if err != nil {
		return nil, err
	}
	var values = make([]int, 0, len(items))
	for i, item := range items {
		var value, err = ToInt(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func FromSlice(items ...expr.Expr) expr.Expr {
	var list = Nil()
	for i := len(items) - 1; i >= 0; i-- {
		list = Cons(items[i], list)
	}
	return list
}

func FromInts(values ...int) expr.Expr {
	var items = make([]expr.Expr, 0, len(values))
	for _, value := range values {
		items = append(items, Numeral(value))
	}
	return FromSlice(items...)
}
