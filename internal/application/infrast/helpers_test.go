package infrast_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	"github.com/andrescamacho/infrast-go/internal/application/infrast"
)

// stubLoader serves plan documents from memory, keyed by path
type stubLoader struct {
	docs  map[string]*infrast.PlanDocument
	paths []string
}

func newStubLoader() *stubLoader {
	return &stubLoader{docs: make(map[string]*infrast.PlanDocument)}
}

func (l *stubLoader) Load(ctx context.Context, path string) (*infrast.PlanDocument, error) {
	l.paths = append(l.paths, path)
	doc, ok := l.docs[path]
	if !ok {
		return nil, fmt.Errorf("plan file not found: %s", path)
	}
	return doc, nil
}

type logEntry struct {
	level    string
	message  string
	metadata map[string]interface{}
}

// captureLogger records every log call
type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *captureLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, metadata: metadata})
}

func (l *captureLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

func withCapture() (context.Context, *captureLogger) {
	logger := &captureLogger{}
	return common.WithLogger(context.Background(), logger), logger
}

type recordedCompile struct {
	mode        infrast.Mode
	state       string
	success     bool
	sequenceLen int
	patches     int
}

type recorderSpy struct {
	calls []recordedCompile
}

func (r *recorderSpy) RecordCompile(mode infrast.Mode, state string, success bool, sequenceLen int, patches int) {
	r.calls = append(r.calls, recordedCompile{mode, state, success, sequenceLen, patches})
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }
