package infrast

import (
	"context"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
	"github.com/andrescamacho/infrast-go/pkg/utils"
)

// Session owns the catalogue, the compiled sequence and the lifecycle of one
// automation session. It is not safe for concurrent use; callers serialize
// access per session.
type Session struct {
	id        string
	catalogue *domain.Catalogue
	compiler  *Compiler
	recorder  CompileRecorder
	sequence  *domain.Sequence
	state     domain.Lifecycle
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithRecorder attaches a compile recorder
func WithRecorder(recorder CompileRecorder) SessionOption {
	return func(s *Session) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithSessionID overrides the generated session ID
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSession creates a session with a fresh catalogue and the minimal sequence
func NewSession(loader PlanLoader, planDir string, opts ...SessionOption) *Session {
	catalogue := domain.NewCatalogue()
	s := &Session{
		id:        utils.GenerateSessionID(),
		catalogue: catalogue,
		compiler:  NewCompiler(catalogue, loader, planDir),
		recorder:  noOpRecorder{},
		sequence:  domain.MinimalSequence(catalogue.Anchor()),
		state:     domain.Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Catalogue exposes the session's units to the scheduler
func (s *Session) Catalogue() *domain.Catalogue {
	return s.catalogue
}

// Sequence returns the current compiled sequence
func (s *Session) Sequence() *domain.Sequence {
	return s.sequence
}

// State returns the session lifecycle
func (s *Session) State() domain.Lifecycle {
	return s.state
}

// BeginExecution freezes the sequence while the scheduler runs it
func (s *Session) BeginExecution() {
	s.state = domain.Executing
}

// EndExecution allows the sequence to be rebuilt again
func (s *Session) EndExecution() {
	s.state = domain.Idle
}

// SetParams decodes raw JSON parameters and compiles them. No error crosses
// this boundary: failures are logged and reported as false.
func (s *Session) SetParams(ctx context.Context, raw []byte) bool {
	params, err := DecodeParams(raw)
	if err != nil {
		common.LoggerFromContext(ctx).Log(common.LevelError, "invalid task params", map[string]interface{}{
			"session_id": s.id,
			"error":      err.Error(),
		})
		return false
	}
	return s.Compile(ctx, params).Success
}

// Compile compiles decoded parameters, stores the resulting sequence and
// applies the resulting patches to the catalogue.
func (s *Session) Compile(ctx context.Context, params *Params) Result {
	logger := common.LoggerFromContext(ctx)

	result := s.compiler.Compile(ctx, s.state, s.sequence, params)
	s.sequence = result.Sequence

	if err := s.catalogue.Apply(result.Patches); err != nil {
		logger.Log(common.LevelError, "failed to apply patches", map[string]interface{}{
			"session_id": s.id,
			"error":      err.Error(),
		})
		result.Success = false
		result.Err = err
	}

	s.recorder.RecordCompile(params.Mode, s.state.String(), result.Success, result.Sequence.Len(), len(result.Patches))

	logger.Log(common.LevelInfo, "infrast params compiled", map[string]interface{}{
		"session_id": s.id,
		"mode":       params.Mode.String(),
		"state":      s.state.String(),
		"success":    result.Success,
		"units":      result.Sequence.Len(),
		"patches":    len(result.Patches),
	})

	return result
}
