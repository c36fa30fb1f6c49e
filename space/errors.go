package space

import "errors"

// ErrBadConfig is returned by the constructors when a configuration value is
// out of range or contradicts another one.
var ErrBadConfig = errors.New("space: invalid configuration")
