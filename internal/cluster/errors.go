package cluster

import "errors"

// ErrCancelled is returned when a caller-supplied context is cancelled
// between k-means iterations or between points in DBSCAN's outer scan.
var ErrCancelled = errors.New("cluster: cancelled")
