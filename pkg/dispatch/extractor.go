package dispatch

import (
	"log/slog"
	"sync"

	"github.com/mcruzdev/microcks/pkg/logging"
)

// Extractor provides the package-level extraction operations with a
// compiled-template cache and decode-failure logging. Caching is purely a
// performance optimization: compiled templates are immutable, so the
// cached form behaves exactly like a fresh compile. An Extractor is safe
// for concurrent use.
type Extractor struct {
	logger *slog.Logger

	mu        sync.RWMutex
	templates map[string]*Template
}

// NewExtractor creates an Extractor. If logger is nil, a no-op logger is
// used and decode failures are reported only through return values.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Extractor{
		logger:    logger,
		templates: make(map[string]*Template),
	}
}

// Template returns the compiled form of pattern, reusing a previously
// compiled Template when the same pattern text has been seen before.
func (e *Extractor) Template(pattern string) (*Template, error) {
	e.mu.RLock()
	t, ok := e.templates[pattern]
	e.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := CompileTemplate(pattern)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.templates[pattern] = t
	e.mu.Unlock()
	return t, nil
}

// PartsFromURIPattern is ExtractPartsFromURIPattern with template caching.
func (e *Extractor) PartsFromURIPattern(pattern string) string {
	t, err := e.Template(pattern)
	if err != nil {
		e.logger.Warn("template did not compile", "pattern", pattern, "error", err)
		return ""
	}
	return t.Rule()
}

// FromURIPattern is ExtractFromURIPattern with template caching.
func (e *Extractor) FromURIPattern(pattern, realURI string) string {
	t, err := e.Template(pattern)
	if err != nil {
		e.logger.Warn("template did not compile", "pattern", pattern, "error", err)
		return ""
	}
	return t.ExtractCriteria(realURI)
}

// ParamsFromURI is ExtractParamsFromURI; decode failures are logged and
// the best-effort rule is returned.
func (e *Extractor) ParamsFromURI(uri string) string {
	rule, err := ExtractParamsFromURI(uri)
	if err != nil {
		e.logger.Warn("query decode failures", "uri", uri, "error", err)
	}
	return rule
}

// FromURIParams is ExtractFromURIParams; decode failures are logged and
// the best-effort criteria string is returned.
func (e *Extractor) FromURIParams(paramsRule, uri string) string {
	criteria, err := ExtractFromURIParams(paramsRule, uri)
	if err != nil {
		e.logger.Warn("query decode failures", "uri", uri, "error", err)
	}
	return criteria
}

// CommonPrefix is ExtractCommonPrefix.
func (e *Extractor) CommonPrefix(uris []string) (string, error) {
	return ExtractCommonPrefix(uris)
}

// PartsFromURIs is ExtractPartsFromURIs.
func (e *Extractor) PartsFromURIs(uris []string) (string, error) {
	return ExtractPartsFromURIs(uris)
}
