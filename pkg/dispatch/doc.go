// Package dispatch computes canonical dispatch rules and criteria from
// request URIs and URI templates.
//
// A dispatch rule names the variables of a mock operation that matter for
// matching: placeholder names from a {name} template, generic positional
// names inferred from example URIs, or query parameter names. A dispatch
// criteria string instantiates a rule with the concrete values of one
// request, serialized in sorted-key order so that equal request shapes
// always produce byte-identical lookup keys:
//
//   - Path-style criteria: "/id=42/region=eu" (sorted "/name=value" segments)
//   - Query-style criteria: "?page=2?size=10" (sorted "?key=value" segments)
//
// Rules are computed once, when a mock operation is defined, from the
// operation's URI template or its example URIs. Criteria are computed per
// incoming request and compared against stored criteria by plain string
// equality. Rules keep their declaration order (template order for
// placeholders, first-seen order for query parameters); only criteria
// are sorted.
//
// All functions are pure transformations over their string inputs, safe
// for unsynchronized concurrent use. Extractor adds a compiled-template
// cache and decode-failure logging on top of the same operations.
package dispatch
