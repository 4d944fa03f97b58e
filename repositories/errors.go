package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no post.
var ErrNotFound = errors.New("post not found")
