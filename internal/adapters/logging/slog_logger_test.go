package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/infrast-go/internal/adapters/logging"
	"github.com/andrescamacho/infrast-go/internal/application/common"
)

func TestSlogLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger("info", "json", &buf)

	logger.Log(common.LevelWarn, "drones room is unset or empty", map[string]interface{}{"plan": 0})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "drones room is unset or empty", record["msg"])
	assert.EqualValues(t, 0, record["plan"])
}

func TestSlogLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger("warn", "text", &buf)

	logger.Log(common.LevelDebug, "hidden", nil)
	logger.Log(common.LevelInfo, "hidden too", nil)
	logger.Log(common.LevelError, "shown", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestTee_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	tee := logging.Tee{
		logging.NewSlogLogger("debug", "text", &a),
		logging.NewSlogLogger("debug", "text", &b),
	}

	tee.Log(common.LevelDebug, "both", nil)

	assert.Contains(t, a.String(), "msg=both")
	assert.Contains(t, b.String(), "msg=both")
}
