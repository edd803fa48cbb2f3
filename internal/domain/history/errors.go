package history

import "errors"

// ErrNotFound indicates a delete targeted an id that is not in the store.
var ErrNotFound = errors.New("history item not found")
