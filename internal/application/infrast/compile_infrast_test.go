package infrast_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/infrast-go/internal/application/infrast"
	"github.com/andrescamacho/infrast-go/internal/application/mediator"
)

func sendCompile(t *testing.T, m mediator.Mediator, raw string) *infrast.CompileInfrastResponse {
	t.Helper()
	resp, err := m.Send(context.Background(), &infrast.CompileInfrastCommand{Params: json.RawMessage(raw)})
	require.NoError(t, err)
	return resp.(*infrast.CompileInfrastResponse)
}

func newCompileMediator(t *testing.T, session *infrast.Session) mediator.Mediator {
	t.Helper()
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*infrast.CompileInfrastCommand](m, infrast.NewCompileInfrastHandler(session)))
	return m
}

func TestCompileInfrastHandler_Success(t *testing.T) {
	// Arrange
	session := infrast.NewSession(nil, "", infrast.WithSessionID("infrast-0001"))
	m := newCompileMediator(t, session)

	// Act
	resp := sendCompile(t, m, `{"facility": ["Mfg", "Trade"]}`)

	// Assert
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	assert.Equal(t, "infrast-0001", resp.SessionID)
	require.Len(t, resp.Units, 6)
	assert.Equal(t, "lead_in", resp.Units[0].Segment)
	assert.Equal(t, "mfg", resp.Units[2].Kind)
	assert.Equal(t, "facility", resp.Units[2].Segment)
	assert.Equal(t, resp.Units[3].SegmentIndex, resp.Units[2].SegmentIndex)
	assert.NotEqual(t, resp.Units[4].SegmentIndex, resp.Units[2].SegmentIndex)
	assert.Equal(t, resp.Units[0].UnitID, resp.Units[3].UnitID)
	assert.Contains(t, resp.Patches, "info: mood_threshold=0.30")
}

func TestCompileInfrastHandler_Failures(t *testing.T) {
	session := infrast.NewSession(nil, "")
	m := newCompileMediator(t, session)

	bad := sendCompile(t, m, `{"facility": ["Mfg"], "threshold": 2}`)
	assert.False(t, bad.Success)
	assert.NotEmpty(t, bad.Error)
	assert.Empty(t, bad.Patches)
	require.Len(t, bad.Units, 1)

	unknown := sendCompile(t, m, `{"facility": ["Nope"]}`)
	assert.False(t, unknown.Success)
	assert.Contains(t, unknown.Error, "Nope")
	assert.NotEmpty(t, unknown.Patches)
}

func TestCompileInfrastHandler_WrongRequestType(t *testing.T) {
	handler := infrast.NewCompileInfrastHandler(infrast.NewSession(nil, ""))

	_, err := handler.Handle(context.Background(), "not a command")

	assert.Error(t, err)
}
