package infrast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/infrast-go/internal/application/infrast"
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

func TestDecodeParams_Defaults(t *testing.T) {
	params, err := infrast.DecodeParams([]byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, infrast.ModeQuick, params.Mode)
	assert.False(t, params.HasFacilityList())
	assert.Equal(t, domain.DroneModeNotUse, params.DroneMode())
	assert.InDelta(t, 0.3, params.MoodThreshold(), 1e-9)
	assert.False(t, params.NotStationedEnabled())
	assert.True(t, params.TrustEnabled())
	assert.False(t, params.ReplenishEnabled())
}

func TestDecodeParams_EmptyInputIsEmptyObject(t *testing.T) {
	params, err := infrast.DecodeParams(nil)

	require.NoError(t, err)
	assert.False(t, params.IsCustom())
}

func TestDecodeParams_AllKeys(t *testing.T) {
	raw := `{
		"mode": 1,
		"facility": ["Mfg", "Trade"],
		"drones": "Money",
		"threshold": 0.5,
		"dorm_notstationed_enabled": true,
		"drom_trust_enabled": false,
		"replenish": true,
		"filename": "plan.json",
		"plan_index": 2
	}`

	params, err := infrast.DecodeParams([]byte(raw))

	require.NoError(t, err)
	assert.True(t, params.IsCustom())
	assert.True(t, params.HasFacilityList())
	assert.Equal(t, "Money", params.DroneMode())
	assert.InDelta(t, 0.5, params.MoodThreshold(), 1e-9)
	assert.True(t, params.NotStationedEnabled())
	assert.False(t, params.TrustEnabled())
	assert.True(t, params.ReplenishEnabled())
	filename, err := params.PlanFilename()
	require.NoError(t, err)
	assert.Equal(t, "plan.json", filename)
	index, err := params.PlanIndexValue()
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	facility, err := params.FacilityList()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Mfg", "Trade"}, facility)
}

func TestDecodeParams_EmptyFacilityListIsPresent(t *testing.T) {
	params, err := infrast.DecodeParams([]byte(`{"facility": []}`))

	require.NoError(t, err)
	assert.True(t, params.HasFacilityList())
	facility, err := params.FacilityList()
	require.NoError(t, err)
	assert.NotNil(t, facility)
	assert.Empty(t, facility)
}

func TestDecodeParams_NullFacilityIsAbsent(t *testing.T) {
	params, err := infrast.DecodeParams([]byte(`{"facility": null}`))

	require.NoError(t, err)
	assert.False(t, params.HasFacilityList())
	facility, err := params.FacilityList()
	require.NoError(t, err)
	assert.Nil(t, facility)
}

func TestDecodeParams_StageKeysDecodeLazily(t *testing.T) {
	// Arrange
	raw := `{"facility": "Mfg", "filename": 5, "plan_index": "first", "threshold": 0.8}`

	// Act
	params, err := infrast.DecodeParams([]byte(raw))

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 0.8, params.MoodThreshold(), 1e-9)

	var invalid *domain.ErrInvalidParam

	_, err = params.FacilityList()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "facility", invalid.Key)

	_, err = params.PlanFilename()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "filename", invalid.Key)

	_, err = params.PlanIndexValue()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "plan_index", invalid.Key)
}

func TestDecodeParams_UnknownModeIsQuick(t *testing.T) {
	params, err := infrast.DecodeParams([]byte(`{"mode": 2}`))

	require.NoError(t, err)
	assert.False(t, params.IsCustom())
	assert.Equal(t, "quick", params.Mode.String())
}

func TestDecodeParams_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed json":      `{"facility": [`,
		"mode not a number":   `{"mode": "custom"}`,
		"threshold above one": `{"threshold": 1.5}`,
		"negative threshold":  `{"threshold": -0.1}`,
		"drones not a string": `{"drones": 3}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := infrast.DecodeParams([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "quick", infrast.ModeQuick.String())
	assert.Equal(t, "custom", infrast.ModeCustom.String())
}
