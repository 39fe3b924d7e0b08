package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/scrabblesolver/internal/dependencies/random"
)

// MockRandom returns queued strings, then a numbered sequence
// ("MOCK0001", "MOCK0002", ...) once the queue is drained
type MockRandom struct {
	mu     sync.Mutex
	queue  []string
	issued int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued value
func (r *MockRandom) String(_ int, _ string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued++
	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		return next
	}
	return fmt.Sprintf("MOCK%04d", r.issued)
}

// QueueString adds values to return before the numbered sequence
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}
