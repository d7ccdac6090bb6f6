package lua

import "errors"

// ErrNotAFunction reports a rule script that did not evaluate to a function.
var ErrNotAFunction = errors.New("script did not return a function")
