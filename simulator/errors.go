package simulator

import "errors"

// ErrInvalidArgument indicates a required device type or OS version argument
// was missing. Unknown names are not errors - lookups degrade to generic
// placeholder descriptors instead.
var ErrInvalidArgument = errors.New("invalid argument")
