package service

import (
	"sync"
	"time"
)

// IDGenerator hands out record IDs as epoch milliseconds, bumped forward
// when needed so that IDs from one generator are strictly increasing.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates an IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the ID for a record created at now.
func (g *IDGenerator) Next(now time.Time) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
