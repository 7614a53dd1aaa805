package dispatch

import (
	"fmt"
	"strings"
)

// ExtractCommonPrefix returns the longest path prefix shared by all given
// URIs, truncated back to the last '/' before the first point of
// divergence so the result always ends on a whole path segment.
//
// A single URI is its own prefix, as is a set of identical URIs. If the
// URIs diverge before any '/', the prefix is empty. An empty input set
// returns ErrNoURIs.
func ExtractCommonPrefix(uris []string) (string, error) {
	if len(uris) == 0 {
		return "", ErrNoURIs
	}

	ref := uris[0]
	for pos := 0; pos < len(ref); pos++ {
		for _, uri := range uris[1:] {
			if pos < len(uri) && uri[pos] == ref[pos] {
				continue
			}
			// Divergence: cut back to the last full segment.
			if cut := strings.LastIndexByte(ref[:pos], '/'); cut >= 0 {
				return ref[:cut], nil
			}
			return "", nil
		}
	}
	return ref, nil
}

// ExtractPartsFromURIs infers a positional dispatch rule from a set of
// example URIs sharing a common prefix. Each variable path segment after
// the prefix becomes a generic "partN" name, and the rule covers the
// maximum segment count observed across the set, since different examples
// may instantiate different numbers of trailing segments. For
// "/a/b/1/2" and "/a/b/1" the rule is "part1 && part2". Returns the
// empty string when no URI carries any segment beyond the prefix.
func ExtractPartsFromURIs(uris []string) (string, error) {
	prefix, err := ExtractCommonPrefix(uris)
	if err != nil {
		return "", err
	}

	maxParts := 0
	for _, uri := range uris {
		if len(uri) <= len(prefix) {
			continue
		}
		rest := strings.TrimPrefix(uri[len(prefix):], "/")
		if n := len(strings.Split(rest, "/")); n > maxParts {
			maxParts = n
		}
	}
	if maxParts == 0 {
		return "", nil
	}

	var rule strings.Builder
	for i := 1; i <= maxParts; i++ {
		if rule.Len() > 0 {
			rule.WriteString(ruleSeparator)
		}
		fmt.Fprintf(&rule, "part%d", i)
	}
	return rule.String(), nil
}
