package repository

import "errors"

// ErrNotFound signals that no entity matched the query. Callers treat
// it as a normal outcome, not a failure.
var ErrNotFound = errors.New("not found")
