package num

import (
	"fmt"
	"strconv"
)

func syntaxError(fn, s string) *strconv.NumError {
	return &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}
}

func rangeError(fn, s string) *strconv.NumError {
	return &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrRange}
}

// unquoteJSON strips the quotes from a JSON string holding a number. Bare
// numbers are returned as-is. A JSON null returns nil bytes and nil error so
// callers can leave their value untouched, like encoding/json does for
// builtin integers.
func unquoteJSON(kind string, bts []byte) ([]byte, error) {
	if len(bts) == 0 {
		return nil, fmt.Errorf("num: %s invalid JSON %q", kind, string(bts))
	}
	if string(bts) == "null" {
		return nil, nil
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("num: %s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}

