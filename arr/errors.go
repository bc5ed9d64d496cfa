package arr

import "errors"

// ErrMissingKey is returned by [GroupByKey] in strict mode when a record
// does not define the grouping key.
var ErrMissingKey = errors.New("arr: record is missing the grouping key")
