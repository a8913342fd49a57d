package style

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// keywordTag marks a scalar as a cascade keyword rather than an exact value,
// so that the keyword none and an exact enum value spelled "none" stay apart.
const keywordTag = "!keyword"

// ErrInvalidProperty is returned when decoding a property that is not a
// single key mapping of a known property name.
var ErrInvalidProperty = errors.New("style: invalid property")

// MarshalYAML encodes exact values as themselves and keywords as a tagged
// scalar such as "!keyword auto".
func (v CssPropertyValue[T]) MarshalYAML() (any, error) {
	if v.State != StateExact {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: keywordTag, Value: v.State.String()}, nil
	}
	return v.Value, nil
}

// UnmarshalYAML decodes what MarshalYAML produces.
func (v *CssPropertyValue[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Tag == keywordTag {
		s, ok := parseValueState(n.Value)
		if !ok {
			return fmt.Errorf("style: unknown keyword %q (line %d)", n.Value, n.Line)
		}
		*v = CssPropertyValue[T]{State: s}
		return nil
	}
	var out T
	if err := n.Decode(&out); err != nil {
		return err
	}
	*v = Exact(out)
	return nil
}

// MarshalYAML encodes p as a mapping with a single key, the property name.
func (p CssProperty) MarshalYAML() (any, error) {
	if p.typ >= propertyTypeCount || p.value == nil {
		return nil, fmt.Errorf("%w: empty property", ErrInvalidProperty)
	}
	val := &yaml.Node{}
	if err := val.Encode(p.value); err != nil {
		return nil, err
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: p.typ.Key()},
			val,
		},
	}, nil
}

// UnmarshalYAML decodes a single key mapping such as "width: 10px".
func (p *CssProperty) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return fmt.Errorf("%w: want a single key mapping (line %d)", ErrInvalidProperty, n.Line)
	}
	t, ok := ParsePropertyType(n.Content[0].Value)
	if !ok {
		return fmt.Errorf("%w: unknown property %q (line %d)", ErrInvalidProperty, n.Content[0].Value, n.Line)
	}
	v, err := propertyTable[t].decode(n.Content[1])
	if err != nil {
		return fmt.Errorf("style: %s: %w", t.Key(), err)
	}
	*p = CssProperty{typ: t, value: v}
	return nil
}
