package chat

import "errors"

// errPanicked settles a request whose answerer panicked
var errPanicked = errors.New("answerer panicked")
