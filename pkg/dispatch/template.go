package dispatch

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// templateToken is one step of a compiled template: a literal run that
// must match byte-for-byte, or a named placeholder capturing one or more
// characters.
type templateToken struct {
	literal string // literal text, empty for placeholders
	name    string // placeholder name, empty for literals
}

// Template is a compiled URI template. Placeholders are written {name};
// everything else is literal text. A Template is immutable and safe for
// concurrent use.
type Template struct {
	pattern string
	tokens  []templateToken
	names   []string
	values  *regexp.Regexp
}

// CompileTemplate tokenizes a URI template into literal runs and {name}
// placeholders in a single scan and prepares a value matcher for concrete
// URIs. Each placeholder captures greedily, so adjacent placeholders with
// no literal separator between them remain ambiguous and values may
// over-capture trailing text; that approximation is accepted. A '{'
// without a matching '}' or an empty placeholder name is a compile error.
func CompileTemplate(pattern string) (*Template, error) {
	t := &Template{pattern: pattern}

	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return nil, fmt.Errorf("template %q: unterminated placeholder", pattern)
		}
		name := rest[open+1 : open+closing]
		if name == "" {
			return nil, fmt.Errorf("template %q: empty placeholder name", pattern)
		}
		if open > 0 {
			t.tokens = append(t.tokens, templateToken{literal: rest[:open]})
		}
		t.tokens = append(t.tokens, templateToken{name: name})
		t.names = append(t.names, name)
		rest = rest[open+closing+1:]
	}
	if rest != "" {
		t.tokens = append(t.tokens, templateToken{literal: rest})
	}

	var expr strings.Builder
	expr.WriteString("^")
	for _, tok := range t.tokens {
		if tok.name != "" {
			expr.WriteString("(.+)")
			continue
		}
		expr.WriteString(regexp.QuoteMeta(tok.literal))
	}
	expr.WriteString("$")

	values, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", pattern, err)
	}
	t.values = values
	return t, nil
}

// Pattern returns the template text the Template was compiled from.
func (t *Template) Pattern() string {
	return t.pattern
}

// PartNames returns the placeholder names in template order.
func (t *Template) PartNames() []string {
	return append([]string(nil), t.names...)
}

// Rule returns the dispatch rule declared by the template: the
// placeholder names joined by " && " in template order, or "" when the
// template has no placeholders.
func (t *Template) Rule() string {
	return strings.Join(t.names, ruleSeparator)
}

// ExtractCriteria projects a concrete URI onto the template and returns
// the canonical dispatch criteria string: one "/name=value" segment per
// placeholder, sorted by name. Returns "" when the URI does not match the
// template, signaling that this template does not apply rather than an
// error. A repeated placeholder name keeps the last captured value.
func (t *Template) ExtractCriteria(realURI string) string {
	if len(t.names) == 0 {
		return ""
	}

	match := t.values.FindStringSubmatch(realURI)
	if match == nil || len(match)-1 != len(t.names) {
		return ""
	}

	criteria := make(map[string]string, len(t.names))
	for i, name := range t.names {
		criteria[name] = match[i+1]
	}

	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result strings.Builder
	for _, key := range keys {
		result.WriteString("/")
		result.WriteString(key)
		result.WriteString("=")
		result.WriteString(criteria[key])
	}
	return result.String()
}

// ExtractPartsFromURIPattern extracts a dispatch rule from a URI
// template: the placeholder names joined by " && " in template order.
// Returns "" for templates without placeholders or templates that fail
// to compile.
func ExtractPartsFromURIPattern(pattern string) string {
	t, err := CompileTemplate(pattern)
	if err != nil {
		return ""
	}
	return t.Rule()
}

// ExtractFromURIPattern builds a canonical dispatch criteria string by
// projecting realURI onto the given template. See Template.ExtractCriteria.
func ExtractFromURIPattern(pattern, realURI string) string {
	t, err := CompileTemplate(pattern)
	if err != nil {
		return ""
	}
	return t.ExtractCriteria(realURI)
}
