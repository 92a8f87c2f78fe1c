package nonmax

import (
	"strconv"
)

// Parse interprets s as a base 10 integer of type T, following the rules of
// strconv.ParseInt or strconv.ParseUint: an optional sign for signed types,
// no sign for unsigned ones, no underscores or base prefix.
//
// Errors are *Error. Text that is malformed or does not fit in T wraps
// ErrSyntax; text naming Sentinel[T]() wraps ErrSentinel.
func Parse[T Integer](s string) (out NonMax[T], err error) {
	var v T
	if Signed[T]() {
		i, err := strconv.ParseInt(s, 10, Bits[T]())
		if err != nil {
			return out, syntaxError[T](s)
		}
		v = T(i)
	} else {
		u, err := strconv.ParseUint(s, 10, Bits[T]())
		if err != nil {
			return out, syntaxError[T](s)
		}
		v = T(u)
	}

	if v == Sentinel[T]() {
		return out, sentinelError("Parse", typeName[T](), s)
	}
	return NonMax[T]{v: v}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// initializing package-level values from literals.
func MustParse[T Integer](s string) NonMax[T] {
	n, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseOption parses s as an Option[T]. The text "none" is None; anything
// else must parse as a NonMax[T].
func ParseOption[T Integer](s string) (Option[T], error) {
	if s == noneText {
		return Option[T]{}, nil
	}
	n, err := Parse[T](s)
	if err != nil {
		return Option[T]{}, err
	}
	return Some(n), nil
}

func syntaxError[T Integer](s string) error {
	return &Error{Func: "Parse", Type: typeName[T](), Input: s, Err: ErrSyntax}
}
