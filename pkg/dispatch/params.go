package dispatch

import (
	"errors"
	"net/url"
	"sort"
	"strings"
)

// queryPair is one decoded key=value query parameter.
type queryPair struct {
	key   string
	value string
}

// decodeQueryPairs splits the query portion of uri (after the first '?')
// into decoded pairs, preserving first-seen order. Pairs without '=' are
// skipped. Pairs whose key or value fail percent-decoding are skipped and
// reported through the returned error (joined DecodeErrors); decoding is
// best-effort and never aborts the remaining pairs.
func decodeQueryPairs(uri string) ([]queryPair, error) {
	if !strings.Contains(uri, "?") || !strings.Contains(uri, "=") {
		return nil, nil
	}

	query := uri[strings.Index(uri, "?")+1:]
	var pairs []queryPair
	var errs []error
	for _, raw := range strings.Split(query, "&") {
		key, value, found := strings.Cut(raw, "=")
		if !found {
			continue
		}
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			errs = append(errs, &DecodeError{Pair: raw, Err: err})
			continue
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			errs = append(errs, &DecodeError{Pair: raw, Err: err})
			continue
		}
		pairs = append(pairs, queryPair{key: decodedKey, value: decodedValue})
	}
	return pairs, errors.Join(errs...)
}

// ExtractParamsFromURI extracts a dispatch rule from the query parameters
// of an example URI. The rule lists parameter names joined by " && " in
// first-seen order; values are discarded since a rule only names the
// parameters that participate in matching. Returns "" when the URI
// carries no query parameters. Decode failures are returned alongside
// the best-effort rule.
func ExtractParamsFromURI(uri string) (string, error) {
	pairs, err := decodeQueryPairs(uri)

	var rule strings.Builder
	for _, p := range pairs {
		if rule.Len() > 0 {
			rule.WriteString(ruleSeparator)
		}
		rule.WriteString(p.key)
	}
	return rule.String(), err
}

// ExtractFromURIParams builds a canonical dispatch criteria string from
// the query parameters of a concrete URI, restricted to the parameter
// names listed in paramsRule. Criteria are serialized as "?key=value"
// segments sorted by key, so two requests carrying the same parameters in
// different order produce identical criteria. Rule membership is exact
// token matching (see RuleTokens). A repeated parameter keeps the last
// decoded value. Decode failures are returned alongside the best-effort
// criteria string.
func ExtractFromURIParams(paramsRule, uri string) (string, error) {
	pairs, err := decodeQueryPairs(uri)
	if len(pairs) == 0 {
		return "", err
	}

	rule := make(map[string]bool)
	for _, token := range RuleTokens(paramsRule) {
		rule[token] = true
	}

	criteria := make(map[string]string, len(pairs))
	for _, p := range pairs {
		criteria[p.key] = p.value
	}

	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		if rule[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var result strings.Builder
	for _, key := range keys {
		result.WriteString("?")
		result.WriteString(key)
		result.WriteString("=")
		result.WriteString(criteria[key])
	}
	return result.String(), err
}
