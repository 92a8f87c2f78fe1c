//go:build !nonmax_noyaml

package nonmax

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = U16{}
	_ yaml.Unmarshaler = (*U16)(nil)
	_ yaml.Marshaler   = OptionI128{}
	_ yaml.Unmarshaler = (*OptionI128)(nil)
)

// MarshalYAML encodes n as a plain integer scalar.
func (n NonMax[T]) MarshalYAML() (interface{}, error) {
	return n.v, nil
}

// UnmarshalYAML decodes any scalar yaml.v3 accepts for a T (including hex
// and octal forms), then rejects the sentinel.
func (n *NonMax[T]) UnmarshalYAML(value *yaml.Node) error {
	var v T
	if err := value.Decode(&v); err != nil {
		return decodeError("yaml", typeName[T](), err)
	}
	if v == Sentinel[T]() {
		return decodeError("yaml", typeName[T](), ErrSentinel)
	}
	n.v = v
	return nil
}

// MarshalYAML encodes None as null. yaml.v3 never passes a null node to
// UnmarshalYAML and leaves the destination untouched, so a null read into a
// zero Option is None.
func (o Option[T]) MarshalYAML() (interface{}, error) {
	if n, ok := o.Get(); ok {
		return n.v, nil
	}
	return nil, nil
}

func (o *Option[T]) UnmarshalYAML(value *yaml.Node) error {
	var n NonMax[T]
	if err := n.UnmarshalYAML(value); err != nil {
		return err
	}
	*o = Some(n)
	return nil
}

func (n U128) MarshalYAML() (interface{}, error) { return intNode(n.String()), nil }

func (n *U128) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalarValue(value)
	if err != nil {
		return decodeError("yaml", "U128", err)
	}
	v, err := ParseU128(s)
	if err != nil {
		return decodeError("yaml", "U128", err)
	}
	*n = v
	return nil
}

func (n I128) MarshalYAML() (interface{}, error) { return intNode(n.String()), nil }

func (n *I128) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalarValue(value)
	if err != nil {
		return decodeError("yaml", "I128", err)
	}
	v, err := ParseI128(s)
	if err != nil {
		return decodeError("yaml", "I128", err)
	}
	*n = v
	return nil
}

func (o OptionU128) MarshalYAML() (interface{}, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalYAML()
	}
	return nil, nil
}

func (o *OptionU128) UnmarshalYAML(value *yaml.Node) error {
	var n U128
	if err := n.UnmarshalYAML(value); err != nil {
		return err
	}
	*o = SomeU128(n)
	return nil
}

func (o OptionI128) MarshalYAML() (interface{}, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalYAML()
	}
	return nil, nil
}

func (o *OptionI128) UnmarshalYAML(value *yaml.Node) error {
	var n I128
	if err := n.UnmarshalYAML(value); err != nil {
		return err
	}
	*o = SomeI128(n)
	return nil
}

// intNode keeps 128-bit values as int scalars. yaml.v3 resolves plain digits
// beyond 64 bits as floats, so those are written with an explicit !!int tag.
func intNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}
}

// scalarValue returns the text of a decimal scalar. 128-bit values accept
// only the decimal form ParseU128 and ParseI128 do.
func scalarValue(value *yaml.Node) (string, error) {
	if value.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("expected scalar node at line %d, found kind %d", value.Line, value.Kind)
	}
	return value.Value, nil
}
