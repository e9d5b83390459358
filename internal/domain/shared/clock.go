package shared

import "time"

// Clock supplies the current time to code that timestamps or deduplicates
// compile log entries
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time in UTC
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock returns the system clock
func NewRealClock() Clock {
	return RealClock{}
}

// MockClock is a clock that only moves when told to
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock starts a mock clock at start, or at the current time when
// start is zero
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &MockClock{CurrentTime: start}
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}
