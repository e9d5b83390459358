package persistence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/andrescamacho/infrast-go/internal/domain/shared"
	"gorm.io/gorm"
)

// CompileLogRepository manages compile log persistence
type CompileLogRepository interface {
	// Log writes a log entry to the database with deduplication
	Log(ctx context.Context, sessionID string, message, level string, metadata map[string]interface{}) error

	// GetLogs retrieves logs for a session, newest first, with optional level filter
	GetLogs(ctx context.Context, sessionID string, limit int, level *string) ([]CompileLogEntry, error)
}

// CompileLogEntry represents a log entry
type CompileLogEntry struct {
	ID        int
	SessionID string
	Timestamp time.Time
	Level     string
	Message   string
	Metadata  map[string]interface{}
}

// GormCompileLogRepository is a GORM-based implementation
type GormCompileLogRepository struct {
	db    *gorm.DB
	clock shared.Clock

	dedupCache   map[string]time.Time // key: sessionID+message, value: last logged time
	dedupMu      sync.Mutex
	dedupWindow  time.Duration
	dedupMaxSize int
}

// NewGormCompileLogRepository creates a new compile log repository
// If clock is nil, uses RealClock (production behavior)
func NewGormCompileLogRepository(db *gorm.DB, clock shared.Clock) *GormCompileLogRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormCompileLogRepository{
		db:           db,
		clock:        clock,
		dedupCache:   make(map[string]time.Time),
		dedupWindow:  60 * time.Second,
		dedupMaxSize: 10000,
	}
}

// Log writes a log entry with time-windowed deduplication
func (r *GormCompileLogRepository) Log(ctx context.Context, sessionID string, message, level string, metadata map[string]interface{}) error {
	now := r.clock.Now()
	cacheKey := sessionID + "|" + level + "|" + message

	r.dedupMu.Lock()
	if lastLogged, exists := r.dedupCache[cacheKey]; exists {
		if now.Sub(lastLogged) < r.dedupWindow {
			r.dedupMu.Unlock()
			return nil
		}
	}

	if len(r.dedupCache) >= r.dedupMaxSize {
		r.cleanupDedupCache()
	}

	r.dedupCache[cacheKey] = now
	r.dedupMu.Unlock()

	var metadataJSON string
	if len(metadata) > 0 {
		if jsonBytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	logEntry := &CompileLogModel{
		SessionID: sessionID,
		Timestamp: now,
		Level:     level,
		Message:   message,
		Metadata:  metadataJSON,
	}

	return r.db.WithContext(ctx).Create(logEntry).Error
}

// cleanupDedupCache removes old entries from the deduplication cache
// Must be called while holding dedupMu lock
func (r *GormCompileLogRepository) cleanupDedupCache() {
	cutoff := r.clock.Now().Add(-r.dedupWindow)
	for key, timestamp := range r.dedupCache {
		if timestamp.Before(cutoff) {
			delete(r.dedupCache, key)
		}
	}
}

// GetLogs retrieves logs for a session with optional level filtering
func (r *GormCompileLogRepository) GetLogs(ctx context.Context, sessionID string, limit int, level *string) ([]CompileLogEntry, error) {
	var models []CompileLogModel

	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID)
	if level != nil {
		query = query.Where("level = ?", *level)
	}

	if err := query.Order("timestamp DESC").Order("id DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]CompileLogEntry, len(models))
	for i, model := range models {
		var metadata map[string]interface{}
		if model.Metadata != "" {
			if err := json.Unmarshal([]byte(model.Metadata), &metadata); err != nil {
				metadata = nil
			}
		}

		entries[i] = CompileLogEntry{
			ID:        model.ID,
			SessionID: model.SessionID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
			Metadata:  metadata,
		}
	}

	return entries, nil
}

// RepositoryLogger adapts a CompileLogRepository to common.SessionLogger for one session
type RepositoryLogger struct {
	repo      CompileLogRepository
	sessionID string
	onError   func(error)
}

// NewRepositoryLogger creates a session logger backed by the repository.
// onError (optional) receives write failures; logging never fails a compile.
func NewRepositoryLogger(repo CompileLogRepository, sessionID string, onError func(error)) *RepositoryLogger {
	return &RepositoryLogger{repo: repo, sessionID: sessionID, onError: onError}
}

// Log implements common.SessionLogger
func (l *RepositoryLogger) Log(level, message string, metadata map[string]interface{}) {
	if err := l.repo.Log(context.Background(), l.sessionID, message, level, metadata); err != nil && l.onError != nil {
		l.onError(err)
	}
}
