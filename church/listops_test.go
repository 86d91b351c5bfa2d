package church

import (
	"testing"

	"github.com/abc401/church/expr"
)

func TestMap(t *testing.T) {
	testInts(t, Map(SuccTerm(), FromInts(0, 1, 2)), []int{1, 2, 3})
	testInts(t, Map(SuccTerm(), Nil()), []int{})
}

func TestFilter(t *testing.T) {
	testInts(t, Filter(NotZeroTerm(), FromInts(0, 1, 0, 2, 3, 0)), []int{1, 2, 3})
	testInts(t, Filter(IsZeroTerm(), FromInts(1, 2)), []int{})
}

func TestFold(t *testing.T) {
	testInt(t, Fold(AddTerm(), Zero(), FromInts(1, 2, 3)), 6)
	testInt(t, Fold(AddTerm(), Numeral(4), Nil()), 4)
	testInt(t, Fold(MultTerm(), Numeral(1), FromInts(2, 3, 4)), 24)
}

func TestFoldOrder(t *testing.T) {
	// ((10 - 1) - 2) from the left, 1 - (2 - 10) from the right.
	var sub = expr.Lambda2("sub", Sub)
	var list = FromInts(1, 2)
	testInt(t, Fold(sub, Numeral(10), list), 7)
	testInt(t, FoldRight(sub, Numeral(10), list), 1)
}

func TestLength(t *testing.T) {
	testInt(t, Length(Nil()), 0)
	testInt(t, Length(FromInts(5, 5, 5, 5)), 4)
}

func TestAppendAndReverse(t *testing.T) {
	testInts(t, Append(FromInts(1, 2), FromInts(3)), []int{1, 2, 3})
	testInts(t, Append(Nil(), FromInts(3)), []int{3})
	testInts(t, Reverse(FromInts(1, 2, 3)), []int{3, 2, 1})
	testInts(t, Reverse(Nil()), []int{})
}

func TestIndexTakeDrop(t *testing.T) {
	var list = FromInts(4, 5, 6)
	testInt(t, Index(list, Zero()), 4)
	testInt(t, Index(list, Numeral(2)), 6)
	testInts(t, Take(list, Numeral(2)), []int{4, 5})
	testInts(t, Take(list, Numeral(9)), []int{4, 5, 6})
	testInts(t, Drop(list, Numeral(1)), []int{5, 6})
	testInts(t, Drop(list, Numeral(5)), []int{})
}

func TestSlice(t *testing.T) {
	var list = FromInts(10, 11, 12, 13, 14)
	var tests = []struct {
		start, end int
		expected   []int
	}{
		{0, 0, []int{}},
		{0, 2, []int{10, 11}},
		{1, 4, []int{11, 12, 13}},
		{3, 9, []int{13, 14}},
		{4, 2, []int{}},
		{7, 9, []int{}},
	}
	for _, tt := range tests {
		testInts(t, Slice(list, Numeral(tt.start), Numeral(tt.end)), tt.expected)
	}
}
