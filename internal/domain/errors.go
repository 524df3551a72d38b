package domain

import "errors"

// ErrUserNotFound is returned when an update or delete targets an id that
// does not exist in the store.
var ErrUserNotFound = errors.New("user not found")
