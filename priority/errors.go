package priority

import "errors"

// ErrInvalidPriority is returned when a priority is NaN, which has no
// place in the heap order.
var ErrInvalidPriority = errors.New("priority: priority is NaN")
