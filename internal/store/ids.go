package store

import (
	"math"
	"strconv"
	"time"
)

type IDGenerator interface {
	Next() string
	// Observe tells the generator an id is already taken.
	Observe(id string)
}

// MonotonicIDs issues millisecond timestamps as decimal strings. When the
// clock has not advanced past the last issued id it hands out last+1. Once
// last reaches math.MaxInt64 it starts again from the clock; Store.Add skips
// any id the collection already holds.
type MonotonicIDs struct {
	now  func() time.Time
	last int64
}

func NewMonotonicIDs(now func() time.Time) *MonotonicIDs {
	if now == nil {
		now = time.Now
	}
	return &MonotonicIDs{now: now}
}

func (g *MonotonicIDs) Next() string {
	n := g.now().UnixMilli()
	if n <= g.last && g.last < math.MaxInt64 {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}

func (g *MonotonicIDs) Observe(id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	if n > g.last {
		g.last = n
	}
}
