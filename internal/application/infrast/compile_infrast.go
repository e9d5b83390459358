package infrast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	"github.com/andrescamacho/infrast-go/internal/application/mediator"
)

// CompileInfrastCommand - Command to compile task params for a session
type CompileInfrastCommand struct {
	Params json.RawMessage
}

// UnitRef identifies one position of the compiled sequence
type UnitRef struct {
	Position     int
	SegmentIndex int
	Segment      string
	Kind         string
	UnitID       string
}

// CompileInfrastResponse - Response from compile infrast command
type CompileInfrastResponse struct {
	SessionID string
	Success   bool
	Error     string
	Units     []UnitRef
	Patches   []string
}

// CompileInfrastHandler - Handles compile infrast commands against one session
type CompileInfrastHandler struct {
	session *Session
}

// NewCompileInfrastHandler creates a new compile infrast handler
func NewCompileInfrastHandler(session *Session) *CompileInfrastHandler {
	return &CompileInfrastHandler{
		session: session,
	}
}

// Handle executes the compile infrast command. Compile failures are reported
// in the response; only a malformed request is an error.
func (h *CompileInfrastHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CompileInfrastCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	response := &CompileInfrastResponse{SessionID: h.session.ID()}

	params, err := DecodeParams(cmd.Params)
	if err != nil {
		common.LoggerFromContext(ctx).Log(common.LevelError, "invalid task params", map[string]interface{}{
			"session_id": h.session.ID(),
			"error":      err.Error(),
		})
		response.Error = err.Error()
		response.Units = unitRefs(h.session)
		return response, nil
	}

	result := h.session.Compile(ctx, params)
	response.Success = result.Success
	if result.Err != nil {
		response.Error = result.Err.Error()
	}
	response.Units = unitRefs(h.session)
	for _, p := range result.Patches {
		response.Patches = append(response.Patches, p.String())
	}

	return response, nil
}

func unitRefs(session *Session) []UnitRef {
	var refs []UnitRef
	for si, seg := range session.Sequence().Segments() {
		for _, u := range seg.Units {
			refs = append(refs, UnitRef{
				Position:     len(refs),
				SegmentIndex: si,
				Segment:      string(seg.Kind),
				Kind:         string(u.Kind()),
				UnitID:       u.ID(),
			})
		}
	}
	return refs
}
