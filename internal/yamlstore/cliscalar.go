package yamlstore

import (
	"gopkg.in/yaml.v3"

	"github.com/dmagro/rclcfg/internal/rclerr"
	"github.com/dmagro/rclcfg/internal/typedvalue"
)

// ParseScalarOrSequence implements spec.md §4.8.3: it parses only the
// yaml-scalar suffix of a `-p name:=yaml-scalar` CLI rule, wrapping it
// as a pseudo-document and accepting only a bare SCALAR or a
// SEQUENCE_START ... SEQUENCE_END region, writing into the same
// typed-value machinery as the full file parser.
func ParseScalarOrSequence(raw string) (typedvalue.Value, *rclerr.Error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return typedvalue.Value{}, rclerr.New(rclerr.InvalidParamRule, "invalid yaml scalar %q: %v", raw, err)
	}
	if len(doc.Content) == 0 {
		return typedvalue.NewString(""), nil
	}
	root := doc.Content[0]
	if root.Anchor != "" || root.Kind == yaml.AliasNode {
		return typedvalue.Value{}, rclerr.New(rclerr.Unsupported, "anchors and aliases are not supported in parameter values")
	}
	switch root.Kind {
	case yaml.ScalarNode:
		return scalarValue(root)
	case yaml.SequenceNode:
		return sequenceValue(root)
	default:
		return typedvalue.Value{}, rclerr.New(rclerr.InvalidParamRule, "parameter value must be a scalar or a sequence of scalars")
	}
}
