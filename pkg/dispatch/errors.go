package dispatch

import (
	"errors"
	"fmt"
)

// ErrNoURIs is returned when an operation requiring example URIs is called
// with an empty set. Zero examples indicate a misconfigured mock operation,
// so this is surfaced as an error instead of a silent empty result.
var ErrNoURIs = errors.New("no example URIs provided")

// DecodeError reports a query parameter pair that could not be
// percent-decoded. Extraction continues past the failed pair; callers
// receive the failures joined into a single error alongside the
// best-effort result.
type DecodeError struct {
	Pair string // the raw key=value pair as it appeared in the URI
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode query pair %q: %v", e.Pair, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
