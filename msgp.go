//go:build !nonmax_nomsgp

package nonmax

import (
	"github.com/tinylib/msgp/msgp"

	"github.com/shabbyrobe/go-nonmax/num"
)

var (
	_ msgp.Marshaler   = U8{}
	_ msgp.Unmarshaler = (*U8)(nil)
	_ msgp.Encodable   = I64{}
	_ msgp.Decodable   = (*I64)(nil)
	_ msgp.Sizer       = OptionU32{}
)

// MarshalMsg appends n as a MessagePack integer, in the smallest encoding
// that holds it.
func (n NonMax[T]) MarshalMsg(b []byte) ([]byte, error) {
	if Signed[T]() {
		return msgp.AppendInt64(b, int64(n.v)), nil
	}
	return msgp.AppendUint64(b, uint64(n.v)), nil
}

// UnmarshalMsg reads a MessagePack integer, which must fit in T and must not
// be the sentinel.
func (n *NonMax[T]) UnmarshalMsg(b []byte) ([]byte, error) {
	v, o, err := readMsgBytes[T](b)
	if err != nil {
		return b, err
	}
	n.v = v
	return o, nil
}

func (n NonMax[T]) EncodeMsg(w *msgp.Writer) error {
	if Signed[T]() {
		return w.WriteInt64(int64(n.v))
	}
	return w.WriteUint64(uint64(n.v))
}

func (n *NonMax[T]) DecodeMsg(r *msgp.Reader) error {
	v, err := readMsg[T](r)
	if err != nil {
		return err
	}
	n.v = v
	return nil
}

func (n NonMax[T]) Msgsize() int { return msgp.Int64Size }

// MarshalMsg writes None as MessagePack nil.
func (o Option[T]) MarshalMsg(b []byte) ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalMsg(b)
	}
	return msgp.AppendNil(b), nil
}

func (o *Option[T]) UnmarshalMsg(b []byte) ([]byte, error) {
	if msgp.IsNil(b) {
		rest, err := msgp.ReadNilBytes(b)
		if err != nil {
			return b, err
		}
		*o = Option[T]{}
		return rest, nil
	}
	v, rest, err := readMsgBytes[T](b)
	if err != nil {
		return b, err
	}
	*o = Some(NonMax[T]{v: v})
	return rest, nil
}

func (o Option[T]) EncodeMsg(w *msgp.Writer) error {
	if n, ok := o.Get(); ok {
		return n.EncodeMsg(w)
	}
	return w.WriteNil()
}

func (o *Option[T]) DecodeMsg(r *msgp.Reader) error {
	if r.IsNil() {
		if err := r.ReadNil(); err != nil {
			return err
		}
		*o = Option[T]{}
		return nil
	}
	v, err := readMsg[T](r)
	if err != nil {
		return err
	}
	*o = Some(NonMax[T]{v: v})
	return nil
}

func (o Option[T]) Msgsize() int { return msgp.Int64Size }

func readMsgBytes[T Integer](b []byte) (v T, o []byte, err error) {
	var ok bool
	if Signed[T]() {
		var i int64
		i, o, err = msgp.ReadInt64Bytes(b)
		if err != nil {
			return v, b, decodeError("msgpack", typeName[T](), err)
		}
		v, ok = fits[T](i)
	} else {
		var u uint64
		u, o, err = msgp.ReadUint64Bytes(b)
		if err != nil {
			return v, b, decodeError("msgpack", typeName[T](), err)
		}
		v, ok = fits[T](u)
	}
	if err := checkMsg(v, ok); err != nil {
		return v, b, err
	}
	return v, o, nil
}

func readMsg[T Integer](r *msgp.Reader) (v T, err error) {
	var ok bool
	if Signed[T]() {
		var i int64
		if i, err = r.ReadInt64(); err != nil {
			return v, decodeError("msgpack", typeName[T](), err)
		}
		v, ok = fits[T](i)
	} else {
		var u uint64
		if u, err = r.ReadUint64(); err != nil {
			return v, decodeError("msgpack", typeName[T](), err)
		}
		v, ok = fits[T](u)
	}
	return v, checkMsg(v, ok)
}

func checkMsg[T Integer](v T, fit bool) error {
	if !fit {
		return decodeError("msgpack", typeName[T](), ErrRange)
	}
	if v == Sentinel[T]() {
		return decodeError("msgpack", typeName[T](), ErrSentinel)
	}
	return nil
}

// MarshalMsg appends n as a 16-byte MessagePack bin holding its
// little-endian form. MessagePack integers stop at 64 bits.
func (n U128) MarshalMsg(b []byte) ([]byte, error) {
	var buf [16]byte
	n.v.PutLittleEndian(buf[:])
	return msgp.AppendBytes(b, buf[:]), nil
}

func (n *U128) UnmarshalMsg(b []byte) ([]byte, error) {
	var buf [16]byte
	o, err := msgp.ReadExactBytes(b, buf[:])
	if err != nil {
		return b, decodeError("msgpack", "U128", err)
	}
	v := num.U128FromLittleEndian(buf[:])
	if v == num.MaxU128 {
		return b, decodeError("msgpack", "U128", ErrSentinel)
	}
	n.v = v
	return o, nil
}

func (n U128) EncodeMsg(w *msgp.Writer) error {
	var buf [16]byte
	n.v.PutLittleEndian(buf[:])
	return w.WriteBytes(buf[:])
}

func (n *U128) DecodeMsg(r *msgp.Reader) error {
	var buf [16]byte
	if err := r.ReadExactBytes(buf[:]); err != nil {
		return decodeError("msgpack", "U128", err)
	}
	v := num.U128FromLittleEndian(buf[:])
	if v == num.MaxU128 {
		return decodeError("msgpack", "U128", ErrSentinel)
	}
	n.v = v
	return nil
}

func (n U128) Msgsize() int { return msgp.BytesPrefixSize + 16 }

func (n I128) MarshalMsg(b []byte) ([]byte, error) {
	var buf [16]byte
	n.v.PutLittleEndian(buf[:])
	return msgp.AppendBytes(b, buf[:]), nil
}

func (n *I128) UnmarshalMsg(b []byte) ([]byte, error) {
	var buf [16]byte
	o, err := msgp.ReadExactBytes(b, buf[:])
	if err != nil {
		return b, decodeError("msgpack", "I128", err)
	}
	v := num.I128FromLittleEndian(buf[:])
	if v == num.MaxI128 {
		return b, decodeError("msgpack", "I128", ErrSentinel)
	}
	n.v = v
	return o, nil
}

func (n I128) EncodeMsg(w *msgp.Writer) error {
	var buf [16]byte
	n.v.PutLittleEndian(buf[:])
	return w.WriteBytes(buf[:])
}

func (n *I128) DecodeMsg(r *msgp.Reader) error {
	var buf [16]byte
	if err := r.ReadExactBytes(buf[:]); err != nil {
		return decodeError("msgpack", "I128", err)
	}
	v := num.I128FromLittleEndian(buf[:])
	if v == num.MaxI128 {
		return decodeError("msgpack", "I128", ErrSentinel)
	}
	n.v = v
	return nil
}

func (n I128) Msgsize() int { return msgp.BytesPrefixSize + 16 }

func (o OptionU128) MarshalMsg(b []byte) ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalMsg(b)
	}
	return msgp.AppendNil(b), nil
}

func (o *OptionU128) UnmarshalMsg(b []byte) ([]byte, error) {
	if msgp.IsNil(b) {
		*o = OptionU128{}
		return msgp.ReadNilBytes(b)
	}
	var n U128
	rest, err := n.UnmarshalMsg(b)
	if err != nil {
		return b, err
	}
	*o = SomeU128(n)
	return rest, nil
}

func (o OptionU128) EncodeMsg(w *msgp.Writer) error {
	if n, ok := o.Get(); ok {
		return n.EncodeMsg(w)
	}
	return w.WriteNil()
}

func (o *OptionU128) DecodeMsg(r *msgp.Reader) error {
	if r.IsNil() {
		*o = OptionU128{}
		return r.ReadNil()
	}
	var n U128
	if err := n.DecodeMsg(r); err != nil {
		return err
	}
	*o = SomeU128(n)
	return nil
}

func (o OptionU128) Msgsize() int { return msgp.BytesPrefixSize + 16 }

func (o OptionI128) MarshalMsg(b []byte) ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalMsg(b)
	}
	return msgp.AppendNil(b), nil
}

func (o *OptionI128) UnmarshalMsg(b []byte) ([]byte, error) {
	if msgp.IsNil(b) {
		*o = OptionI128{}
		return msgp.ReadNilBytes(b)
	}
	var n I128
	rest, err := n.UnmarshalMsg(b)
	if err != nil {
		return b, err
	}
	*o = SomeI128(n)
	return rest, nil
}

func (o OptionI128) EncodeMsg(w *msgp.Writer) error {
	if n, ok := o.Get(); ok {
		return n.EncodeMsg(w)
	}
	return w.WriteNil()
}

func (o *OptionI128) DecodeMsg(r *msgp.Reader) error {
	if r.IsNil() {
		*o = OptionI128{}
		return r.ReadNil()
	}
	var n I128
	if err := n.DecodeMsg(r); err != nil {
		return err
	}
	*o = SomeI128(n)
	return nil
}

func (o OptionI128) Msgsize() int { return msgp.BytesPrefixSize + 16 }
