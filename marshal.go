package nonmax

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

func (n NonMax[T]) MarshalText() ([]byte, error) {
	return n.AppendText(nil)
}

func (n *NonMax[T]) UnmarshalText(b []byte) error {
	v, err := Parse[T](string(b))
	if err != nil {
		return decodeError("text", typeName[T](), err)
	}
	*n = v
	return nil
}

// MarshalJSON encodes n as a bare JSON number, as encoding/json does for T.
func (n NonMax[T]) MarshalJSON() ([]byte, error) {
	return n.AppendText(nil)
}

// UnmarshalJSON decodes a JSON number as a T, then rejects the sentinel. A
// JSON string holding the decimal text is accepted too, which is the form
// encoding/json hands over for map keys. A JSON null leaves n untouched, as
// it would a T.
func (n *NonMax[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return decodeError("json", typeName[T](), err)
		}
		v, err := Parse[T](s)
		if err != nil {
			return decodeError("json", typeName[T](), err)
		}
		*n = v
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return decodeError("json", typeName[T](), err)
	}
	if v == Sentinel[T]() {
		return decodeError("json", typeName[T](), ErrSentinel)
	}
	n.v = v
	return nil
}

// AppendBinary appends the little-endian form of n, Bits[T]()/8 bytes long,
// to b. It implements encoding.BinaryAppender.
func (n NonMax[T]) AppendBinary(b []byte) ([]byte, error) {
	return appendLittleEndian(b, n.v), nil
}

func (n NonMax[T]) MarshalBinary() ([]byte, error) {
	return appendLittleEndian(make([]byte, 0, Bits[T]()/8), n.v), nil
}

func (n *NonMax[T]) UnmarshalBinary(b []byte) error {
	v, err := readLittleEndian[T](b)
	if err != nil {
		return decodeError("binary", typeName[T](), err)
	}
	if v == Sentinel[T]() {
		return decodeError("binary", typeName[T](), ErrSentinel)
	}
	n.v = v
	return nil
}

func (o Option[T]) MarshalText() ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalText()
	}
	return []byte(noneText), nil
}

// UnmarshalText accepts the decimal text of a value, or "none".
func (o *Option[T]) UnmarshalText(b []byte) error {
	v, err := ParseOption[T](string(b))
	if err != nil {
		return decodeError("text", "Option"+typeName[T](), err)
	}
	*o = v
	return nil
}

// MarshalJSON encodes None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalJSON()
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes null as None. A number equal to the sentinel is an
// error, not None.
func (o *Option[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Option[T]{}
		return nil
	}
	var n NonMax[T]
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*o = Some(n)
	return nil
}

// AppendBinary appends o.Primitive() in little-endian order, so None is
// written as the sentinel and the encoding is no wider than NonMax[T]'s.
func (o Option[T]) AppendBinary(b []byte) ([]byte, error) {
	return appendLittleEndian(b, o.Primitive()), nil
}

func (o Option[T]) MarshalBinary() ([]byte, error) {
	return o.AppendBinary(make([]byte, 0, Bits[T]()/8))
}

func (o *Option[T]) UnmarshalBinary(b []byte) error {
	v, err := readLittleEndian[T](b)
	if err != nil {
		return decodeError("binary", "Option"+typeName[T](), err)
	}
	*o = NewOption(v)
	return nil
}

func appendLittleEndian[T Integer](b []byte, v T) []byte {
	switch Bits[T]() {
	case 8:
		return append(b, byte(v))
	case 16:
		return binary.LittleEndian.AppendUint16(b, uint16(v))
	case 32:
		return binary.LittleEndian.AppendUint32(b, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(b, uint64(v))
	}
}

func readLittleEndian[T Integer](b []byte) (v T, err error) {
	if sz := Bits[T]() / 8; len(b) != sz {
		return v, fmt.Errorf("nonmax: expected %d bytes, found %d", sz, len(b))
	}
	switch len(b) {
	case 1:
		return T(b[0]), nil
	case 2:
		return T(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return T(binary.LittleEndian.Uint32(b)), nil
	default:
		return T(binary.LittleEndian.Uint64(b)), nil
	}
}
