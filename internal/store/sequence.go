package store

import "sync/atomic"

// sequence issues monotonically increasing identifiers starting at 1.
// Identifiers are never reused.
type sequence struct {
	last atomic.Int64
}

func (q *sequence) next() int64 {
	return q.last.Add(1)
}
