package estimate

import "errors"

var ErrEstimateNotFound = errors.New("estimate not found")
