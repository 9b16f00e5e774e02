package yamlstore

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmagro/rclcfg/internal/rclerr"
	"github.com/dmagro/rclcfg/internal/typedvalue"
)

const paramsKey = "ros__parameters"

// LoadFile reads and parses a YAML parameter file from path into a fresh
// ParameterStore.
func LoadFile(path string) (*typedvalue.ParameterStore, *rclerr.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rclerr.New(rclerr.InvalidArgument, "reading parameter file %q: %v", path, err)
	}
	return LoadString(string(data))
}

// LoadString parses in-memory YAML text into a fresh ParameterStore.
// On any error the returned store is discarded (nil) per spec.md's
// "after failure the store is empty" requirement (§8 scenario 2).
func LoadString(content string) (*typedvalue.ParameterStore, *rclerr.Error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, rclerr.New(rclerr.InvalidArgument, "invalid yaml: %v", err)
	}
	if len(doc.Content) == 0 {
		return typedvalue.NewParameterStore(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, rclerr.AtLine(rclerr.InvalidArgument, root.Line, "top-level YAML document must be a mapping")
	}

	store := typedvalue.NewParameterStore()
	if err := walkNamespaceLevel(root, store, nil); err != nil {
		return nil, err
	}
	return store, nil
}

// walkNamespaceLevel implements the NODE_NAME_LEVEL state of spec.md
// §4.8's state machine: each key is either a namespace/node-name
// segment (recurse deeper) or the literal "ros__parameters" boundary
// (transition to PARAMS_LEVEL).
func walkNamespaceLevel(node *yaml.Node, store *typedvalue.ParameterStore, nsStack []string) *rclerr.Error {
	pairs, err := mappingPairs(node)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if p.key.Value == paramsKey {
			nodeFQN := joinNodeFQN(nsStack)
			if err := validateNodeFQN(nodeFQN); err != nil {
				return err
			}
			if p.val.Kind != yaml.MappingNode {
				return rclerr.AtLine(rclerr.InvalidArgument, p.val.Line, "%s must be a mapping", paramsKey)
			}
			params := store.EnsureNode(nodeFQN)
			if err := walkParamsLevel(p.val, params, nil); err != nil {
				return err
			}
			continue
		}
		if p.val.Kind != yaml.MappingNode {
			return rclerr.AtLine(rclerr.InvalidArgument, p.val.Line,
				"expected a nested mapping under namespace segment %q", p.key.Value)
		}
		child := appendNamespaceSegment(nsStack, p.key.Value)
		if err := walkNamespaceLevel(p.val, store, child); err != nil {
			return err
		}
	}
	return nil
}

// walkParamsLevel implements the PARAMS_LEVEL state: a key whose value
// is itself a mapping is a group name (push onto paramStack and
// recurse); a key whose value is a scalar or sequence is a leaf
// parameter, stored under paramStack joined with '.' plus the key.
func walkParamsLevel(node *yaml.Node, params *typedvalue.NodeParameters, paramStack []string) *rclerr.Error {
	pairs, err := mappingPairs(node)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		switch p.val.Kind {
		case yaml.MappingNode:
			child := append(append([]string{}, paramStack...), p.key.Value)
			if err := walkParamsLevel(p.val, params, child); err != nil {
				return err
			}
		case yaml.ScalarNode:
			val, err := scalarValue(p.val)
			if err != nil {
				return err
			}
			params.Set(leafName(paramStack, p.key.Value), val)
		case yaml.SequenceNode:
			val, err := sequenceValue(p.val)
			if err != nil {
				return err
			}
			params.Set(leafName(paramStack, p.key.Value), val)
		default:
			return rclerr.AtLine(rclerr.InvalidArgument, p.val.Line, "unsupported value shape for parameter %q", p.key.Value)
		}
	}
	return nil
}

func sequenceValue(node *yaml.Node) (typedvalue.Value, *rclerr.Error) {
	var b typedvalue.SequenceBuilder
	for _, elem := range node.Content {
		if elem.Kind != yaml.ScalarNode {
			return typedvalue.Value{}, rclerr.AtLine(rclerr.InvalidArgument, elem.Line, "sequence elements must be scalars")
		}
		v, err := scalarValue(elem)
		if err != nil {
			return typedvalue.Value{}, err
		}
		if err := b.Append(v); err != nil {
			err.Line = elem.Line
			err.HasLine = true
			return typedvalue.Value{}, err
		}
	}
	return b.Value(), nil
}

// appendNamespaceSegment extends nsStack by key. A key written with a
// leading "/" (the conventional way to spell a global wildcard node name
// like "/**" as a single mapping key) is split on "/" instead of being
// treated as one opaque segment, so it composes correctly with
// joinNodeFQN.
func appendNamespaceSegment(nsStack []string, key string) []string {
	if !strings.HasPrefix(key, "/") {
		return append(append([]string{}, nsStack...), key)
	}
	parts := strings.Split(strings.TrimPrefix(key, "/"), "/")
	out := append([]string{}, nsStack...)
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func leafName(group []string, key string) string {
	if len(group) == 0 {
		return key
	}
	return strings.Join(group, ".") + "." + key
}

func joinNodeFQN(nsStack []string) string {
	if len(nsStack) == 0 {
		return "/"
	}
	return "/" + strings.Join(nsStack, "/")
}

type pair struct {
	key *yaml.Node
	val *yaml.Node
}

func mappingPairs(node *yaml.Node) ([]pair, *rclerr.Error) {
	if node.Kind == yaml.AliasNode {
		return nil, rclerr.AtLine(rclerr.Unsupported, node.Line, "aliases are not supported")
	}
	if node.Anchor != "" {
		return nil, rclerr.AtLine(rclerr.Unsupported, node.Line, "anchors are not supported")
	}
	if node.Kind != yaml.MappingNode {
		return nil, rclerr.AtLine(rclerr.InvalidArgument, node.Line, "expected a mapping")
	}
	if len(node.Content)%2 != 0 {
		return nil, rclerr.AtLine(rclerr.InvalidArgument, node.Line, "malformed mapping")
	}
	out := make([]pair, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind == yaml.AliasNode || v.Kind == yaml.AliasNode {
			return nil, rclerr.AtLine(rclerr.Unsupported, k.Line, "aliases are not supported")
		}
		if k.Kind != yaml.ScalarNode {
			return nil, rclerr.AtLine(rclerr.InvalidArgument, k.Line, "mapping keys must be scalars")
		}
		out = append(out, pair{key: k, val: v})
	}
	return out, nil
}

// validateNodeFQN validates a fully-qualified node name per spec.md
// §4.8.1: namespace rules apply to every segment, except that the
// overall name (or its final segment) may be the wildcard "/**" or
// "/*".
func validateNodeFQN(fqn string) *rclerr.Error {
	if fqn == "/**" || fqn == "/*" {
		return nil
	}
	if fqn == "/" || fqn == "" {
		return rclerr.New(rclerr.NodeInvalidNamespace, "node name must not be the bare root namespace")
	}
	segments := strings.Split(strings.TrimPrefix(fqn, "/"), "/")
	for i, seg := range segments {
		last := i == len(segments)-1
		if last && (seg == "**" || seg == "*") {
			continue
		}
		if res := validateIdentSegment(seg); !res {
			return rclerr.New(rclerr.NodeInvalidNamespace, "node name segment %q is invalid", seg)
		}
	}
	return nil
}

func validateIdentSegment(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !(first == '_' || (first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
