package infrast

import "context"

// PlanLoader reads a plan document from storage.
// Implementations must fail when the path does not name a readable regular file.
type PlanLoader interface {
	Load(ctx context.Context, path string) (*PlanDocument, error)
}

// CompileRecorder receives one observation per compile
type CompileRecorder interface {
	RecordCompile(mode Mode, state string, success bool, sequenceLen int, patches int)
}

type noOpRecorder struct{}

func (noOpRecorder) RecordCompile(Mode, string, bool, int, int) {}
