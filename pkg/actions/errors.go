package actions

import "errors"

// ErrMalformedEdit indicates that an edit was constructed in violation of
// its invariant. It is the only failure this package can produce: the
// conditional-counterpart projection is total and never fails.
var ErrMalformedEdit = errors.New("malformed edit")
