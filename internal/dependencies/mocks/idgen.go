package mocks

import (
	"fmt"

	"github.com/mcoot/scorekeeper/internal/dependencies/idgen"
)

// MockIDGenerator hands out queued ids, then sequential "id-N" values
type MockIDGenerator struct {
	queue []string
	next  int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a MockIDGenerator with an empty queue
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewID returns the next queued id, or a sequential one when the queue is empty
func (g *MockIDGenerator) NewID() string {
	if len(g.queue) > 0 {
		id := g.queue[0]
		g.queue = g.queue[1:]
		return id
	}
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

// Queue adds ids to be returned by subsequent NewID calls
func (g *MockIDGenerator) Queue(ids ...string) {
	g.queue = append(g.queue, ids...)
}
