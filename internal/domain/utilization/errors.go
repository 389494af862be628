package utilization

import "errors"

var ErrNotFound = errors.New("Utilization record not found")
