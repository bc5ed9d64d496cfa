package clone

import "errors"

// ErrUnsupportedKind is returned by [Fingerprint] for values that have no
// structural representation (channels, functions, unsafe pointers).
var ErrUnsupportedKind = errors.New("clone: unsupported kind")
