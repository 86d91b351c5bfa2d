package church

import "errors"

var (
	ErrNotNumeral = errors.New("Term is not a church numeral")
	ErrNotBoolean = errors.New("Term is not a church boolean")
	// ErrNotList is best-effort: terms whose first slot happens to decode as
	// true, such as Zero or False, read as the empty list.
	ErrNotList    = errors.New("Term is not a church list")
)
