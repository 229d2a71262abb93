package dice

// MockSource replays a queued sequence of die results, falling back to
// the midpoint of the die when the queue is exhausted.
type MockSource struct {
	queue []int
}

// NewMockSource prepares a deterministic sequence for upcoming rolls.
func NewMockSource(results ...int) *MockSource {
	return &MockSource{queue: results}
}

// Push appends more deterministic results.
func (m *MockSource) Push(results ...int) {
	m.queue = append(m.queue, results...)
}

// Remaining reports how many queued values are left unconsumed.
func (m *MockSource) Remaining() int {
	return len(m.queue)
}

func (m *MockSource) Die(sides int) int {
	if len(m.queue) > 0 {
		val := m.queue[0]
		m.queue = m.queue[1:]
		return val
	}
	if sides <= 0 {
		return 0
	}
	return (sides + 1) / 2
}
