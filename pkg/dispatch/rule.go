package dispatch

import "strings"

// ruleSeparator joins variable names in a dispatch rule.
const ruleSeparator = " && "

// RuleTokens splits a dispatch rule into its variable name tokens.
// Rules join names with " && "; empty tokens are dropped, so an empty
// rule yields no tokens. Criteria filtering uses exact token membership,
// never substring containment, so a rule naming "id" does not admit a
// parameter named "userid".
func RuleTokens(rule string) []string {
	var tokens []string
	for _, token := range strings.Split(rule, ruleSeparator) {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
