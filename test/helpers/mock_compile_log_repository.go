package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/andrescamacho/infrast-go/internal/adapters/persistence"
)

// MockCompileLogRepository is an in-memory implementation of CompileLogRepository for testing
type MockCompileLogRepository struct {
	mu     sync.Mutex
	Logs   map[string][]persistence.CompileLogEntry // key: session_id
	LogErr error
}

// NewMockCompileLogRepository creates a new mock compile log repository
func NewMockCompileLogRepository() *MockCompileLogRepository {
	return &MockCompileLogRepository{
		Logs: make(map[string][]persistence.CompileLogEntry),
	}
}

// Log writes a log entry (in-memory only for testing)
func (m *MockCompileLogRepository) Log(ctx context.Context, sessionID string, message, level string, metadata map[string]interface{}) error {
	if m.LogErr != nil {
		return m.LogErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Logs[sessionID] = append(m.Logs[sessionID], persistence.CompileLogEntry{
		ID:        len(m.Logs[sessionID]) + 1,
		SessionID: sessionID,
		Message:   message,
		Level:     level,
		Metadata:  metadata,
		Timestamp: time.Now(),
	})
	return nil
}

// GetLogs retrieves logs for a session, newest first
func (m *MockCompileLogRepository) GetLogs(ctx context.Context, sessionID string, limit int, level *string) ([]persistence.CompileLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logs := m.Logs[sessionID]
	filtered := make([]persistence.CompileLogEntry, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		if level != nil && logs[i].Level != *level {
			continue
		}
		filtered = append(filtered, logs[i])
	}

	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// Messages returns the logged messages of a session at a level, oldest first
func (m *MockCompileLogRepository) Messages(sessionID, level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var messages []string
	for _, e := range m.Logs[sessionID] {
		if e.Level == level {
			messages = append(messages, e.Message)
		}
	}
	return messages
}
