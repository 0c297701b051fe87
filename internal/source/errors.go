package source

import "errors"

// ErrFileUnreadable is wrapped by every Load failure: the path could not be
// opened, read, or decoded as text.
var ErrFileUnreadable = errors.New("file unreadable")
