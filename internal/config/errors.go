package config

import "errors"

// ErrInvalidServerConfigs indicates invalid server settings (for example,
// a port outside the valid range or a negative request timeout).
var ErrInvalidServerConfigs = errors.New("invalid server configuration")
