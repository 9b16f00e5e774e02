package names

import (
	"strings"

	"github.com/dmagro/rclcfg/internal/rclerr"
)

// Expand resolves {token} substitutions in name and anchors the result
// to an absolute path, per spec.md §4.3. name must already have passed
// ValidateTopicName. substitutions supplies lookups for any {token}
// beyond the built-ins {node}, {ns}, {namespace}.
func Expand(name, nodeName, nodeNamespace string, substitutions map[string]string) (string, *rclerr.Error) {
	out := name

	switch {
	case strings.HasPrefix(out, "/") && !strings.Contains(out, "{"):
		// already fully-qualified with nothing to substitute; clone it.
		return out, nil
	case strings.HasPrefix(out, "~/"):
		prefix := nodeNamespace
		if nodeNamespace != "/" {
			prefix += "/"
		}
		out = prefix + nodeName + out[1:]
	}

	resolved, err := substituteTokens(out, nodeName, nodeNamespace, substitutions)
	if err != nil {
		return "", err
	}
	out = resolved

	if !strings.HasPrefix(out, "/") {
		prefix := nodeNamespace
		if nodeNamespace != "/" {
			prefix += "/"
		}
		out = prefix + out
	}
	return out, nil
}

func substituteTokens(s, nodeName, nodeNamespace string, substitutions map[string]string) (string, *rclerr.Error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '{' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			// ValidateTopicName should have rejected this already; treat
			// defensively as a literal.
			b.WriteString(s[i:])
			break
		}
		token := s[i+1 : i+end]
		var repl string
		switch token {
		case "node":
			repl = nodeName
		case "ns", "namespace":
			repl = nodeNamespace
		default:
			v, ok := substitutions[token]
			if !ok {
				return "", rclerr.New(rclerr.UnknownSubstitution, "unknown substitution %q", token).WithIndex(i)
			}
			repl = v
		}
		b.WriteString(repl)
		i += end + 1
	}
	return b.String(), nil
}
