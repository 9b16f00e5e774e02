package remap

import (
	"strings"

	"github.com/dmagro/rclcfg/internal/nameslex"
	"github.com/dmagro/rclcfg/internal/rclerr"
)

// ParseRule parses a single remap-rule token per the grammar in spec.md
// §4.5:
//
//	rule = [node_prefix ":"] (name_remap | ns_remap | nodename_remap) EOF
func ParseRule(text string) (Rule, *rclerr.Error) {
	lx := nameslex.New(text)

	var prefix string
	hasPrefix := false
	if looksLikePrefixedRule(text) {
		tok, _ := lx.Accept(nameslex.TOKEN)
		if _, ok := lx.Accept(nameslex.COLON); ok {
			prefix = tok.Text
			hasPrefix = true
		} else {
			// not actually a prefix: rewind by re-lexing from scratch.
			lx = nameslex.New(text)
		}
	}

	switch lx.Peek().Kind {
	case nameslex.NS:
		return parseNamespaceRemap(lx, prefix, hasPrefix)
	case nameslex.NODE:
		return parseNodeNameRemap(lx, prefix, hasPrefix)
	default:
		return parseNameRemap(lx, prefix, hasPrefix)
	}
}

// looksLikePrefixedRule is a cheap heuristic: a "node_prefix:" is present
// only when the text contains a bare COLON (not part of "rostopic://",
// "rosservice://", or ":=") before the first ":=" or "__ns"/"__node".
func looksLikePrefixedRule(text string) bool {
	// A text that starts with a scheme marker has no node_prefix, so the
	// colon embedded in the marker is never taken for one.
	stripped := text
	for _, scheme := range []string{"rostopic://", "rosservice://"} {
		if strings.HasPrefix(stripped, scheme) {
			return false // node_prefix never precedes a scheme marker
		}
	}
	sep := strings.Index(stripped, ":=")
	colon := strings.IndexByte(stripped, ':')
	if colon < 0 {
		return false
	}
	if sep >= 0 && colon >= sep {
		return false
	}
	// a colon immediately followed by '=' is the separator itself, not a
	// node-prefix colon.
	if colon+1 < len(stripped) && stripped[colon+1] == '=' {
		return false
	}
	return true
}

func parseNameRemap(lx *nameslex.Lexer, prefix string, hasPrefix bool) (Rule, *rclerr.Error) {
	scope := ScopeTopic | ScopeService
	switch lx.Peek().Kind {
	case nameslex.URL_TOPIC:
		lx.Next()
		scope = ScopeTopic
	case nameslex.URL_SERVICE:
		lx.Next()
		scope = ScopeService
	}

	match, err := parseNamePath(lx, "match")
	if err != nil {
		return Rule{}, err
	}
	if _, err := lx.Expect(nameslex.SEPARATOR); err != nil {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "expected ':=' in remap rule")
	}
	replacement, err := parseNamePath(lx, "replacement")
	if err != nil {
		return Rule{}, err
	}
	if lx.Peek().Kind != nameslex.EOF {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "unexpected trailing characters in remap rule")
	}

	return Rule{
		Scope:        scope,
		NodePrefix:   prefix,
		HasPrefix:    hasPrefix,
		MatchPattern: match,
		HasMatch:     true,
		Replacement:  replacement,
	}, nil
}

// parseNamePath parses `["~/" | "/"] segment ("/" segment)*`, rejecting
// reserved wildcard and back-reference tokens as "unimplemented" per
// spec.md §4.5 and §9.
func parseNamePath(lx *nameslex.Lexer, role string) (string, *rclerr.Error) {
	var b strings.Builder
	if tok, ok := lx.Accept(nameslex.TILDE_SLASH); ok {
		b.WriteString(tok.Text)
	} else if tok, ok := lx.Accept(nameslex.FORWARD_SLASH); ok {
		b.WriteString(tok.Text)
	}

	first := true
	for {
		switch lx.Peek().Kind {
		case nameslex.WILD_ONE, nameslex.WILD_MULTI:
			return "", rclerr.New(rclerr.Unsupported, "wildcard tokens are not implemented in remap %s segments", role)
		case nameslex.BACKREF:
			return "", rclerr.New(rclerr.Unsupported, "back-references are not implemented in remap %s segments", role)
		}
		tok, ok := lx.Accept(nameslex.TOKEN)
		if !ok {
			if first {
				return "", rclerr.New(rclerr.InvalidRemapRule, "expected a name segment in %s", role)
			}
			return "", rclerr.New(rclerr.InvalidRemapRule, "expected a name segment after '/' in %s", role)
		}
		b.WriteString(tok.Text)
		first = false
		if _, ok := lx.Accept(nameslex.FORWARD_SLASH); ok {
			b.WriteString("/")
			continue
		}
		break
	}
	return b.String(), nil
}

func parseNamespaceRemap(lx *nameslex.Lexer, prefix string, hasPrefix bool) (Rule, *rclerr.Error) {
	lx.Next() // consume __ns
	if _, err := lx.Expect(nameslex.SEPARATOR); err != nil {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "expected ':=' after __ns")
	}
	ns, err := parseFullyQualifiedNamespace(lx)
	if err != nil {
		return Rule{}, err
	}
	if lx.Peek().Kind != nameslex.EOF {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "unexpected trailing characters after __ns rule")
	}
	return Rule{
		Scope:       ScopeNamespace,
		NodePrefix:  prefix,
		HasPrefix:   hasPrefix,
		Replacement: ns,
	}, nil
}

// parseFullyQualifiedNamespace parses `("/" TOKEN)+ ["/"]`.
func parseFullyQualifiedNamespace(lx *nameslex.Lexer) (string, *rclerr.Error) {
	var b strings.Builder
	count := 0
	for {
		if _, ok := lx.Accept(nameslex.FORWARD_SLASH); !ok {
			break
		}
		b.WriteString("/")
		tok, ok := lx.Accept(nameslex.TOKEN)
		if !ok {
			if lx.Peek().Kind == nameslex.EOF && count > 0 {
				break // trailing "/"
			}
			return "", rclerr.New(rclerr.InvalidRemapRule, "expected a namespace segment after '/'")
		}
		b.WriteString(tok.Text)
		count++
	}
	if count == 0 {
		return "", rclerr.New(rclerr.InvalidRemapRule, "namespace replacement must be fully-qualified")
	}
	return b.String(), nil
}

func parseNodeNameRemap(lx *nameslex.Lexer, prefix string, hasPrefix bool) (Rule, *rclerr.Error) {
	lx.Next() // consume __node / __name
	if _, err := lx.Expect(nameslex.SEPARATOR); err != nil {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "expected ':=' after __node")
	}
	tok, ok := lx.Accept(nameslex.TOKEN)
	if !ok {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "expected a bare identifier after __node:=")
	}
	if lx.Peek().Kind != nameslex.EOF {
		return Rule{}, rclerr.New(rclerr.InvalidRemapRule, "unexpected trailing characters after __node rule")
	}
	return Rule{
		Scope:       ScopeNodeName,
		NodePrefix:  prefix,
		HasPrefix:   hasPrefix,
		Replacement: tok.Text,
	}, nil
}
