package nonmax

import (
	"fmt"
	"io"
	"strconv"
)

const noneText = "none"

func (n NonMax[T]) String() string { return formatInt(n.v) }

// Text returns n in the given base, which must be between 2 and 36
// inclusive (see strconv.FormatInt).
func (n NonMax[T]) Text(base int) string {
	if Signed[T]() {
		return strconv.FormatInt(int64(n.v), base)
	}
	return strconv.FormatUint(uint64(n.v), base)
}

// AppendText appends the decimal form of n to b. It implements
// encoding.TextAppender.
func (n NonMax[T]) AppendText(b []byte) ([]byte, error) {
	if Signed[T]() {
		return strconv.AppendInt(b, int64(n.v), 10), nil
	}
	return strconv.AppendUint(b, uint64(n.v), 10), nil
}

// Format passes the verb and flags straight through to the primitive, so
// n prints exactly as n.Get() would under any verb.
func (n NonMax[T]) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, fmt.FormatString(s, c), n.v)
}

func (o Option[T]) String() string {
	if n, ok := o.Get(); ok {
		return n.String()
	}
	return noneText
}

// Format prints a present value as NonMax.Format does, and None as "none".
func (o Option[T]) Format(s fmt.State, c rune) {
	if n, ok := o.Get(); ok {
		n.Format(s, c)
		return
	}
	io.WriteString(s, noneText)
}
