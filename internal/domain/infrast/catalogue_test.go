package infrast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

func TestNewCatalogue_OneUnitPerKind(t *testing.T) {
	catalogue := infrast.NewCatalogue()

	ids := map[string]bool{catalogue.Anchor().ID(): true}
	for _, kind := range infrast.MoodUnits {
		unit := catalogue.Unit(kind)
		require.NotNil(t, unit, kind)
		assert.Equal(t, kind, unit.Kind())
		assert.False(t, ids[unit.ID()], "duplicate unit id %s", unit.ID())
		ids[unit.ID()] = true
	}

	assert.Nil(t, catalogue.Unit(infrast.UnitSpecialDorm))
	assert.Same(t, catalogue.Unit(infrast.UnitMfg), catalogue.Facility(infrast.FacilityMfg))
}

func TestNewUnit_Defaults(t *testing.T) {
	unit := infrast.NewUnit(infrast.UnitTrade)

	settings := unit.Settings()
	assert.Equal(t, infrast.DroneModeNotUse, settings.DroneMode)
	assert.True(t, settings.TrustEnabled)
	assert.False(t, settings.NotStationedEnabled)
	assert.Contains(t, unit.ID(), "trade-")
}

func TestCatalogue_ApplyPatches(t *testing.T) {
	catalogue := infrast.NewCatalogue()
	patches := []infrast.Patch{
		{Target: infrast.UnitMfg, Change: infrast.DroneMode{Mode: "Money", PluginRetries: 0}},
		{Target: infrast.UnitMfg, Change: infrast.ShardReplenish{Enabled: true}},
		{Target: infrast.UnitDorm, Change: infrast.TrustOperators{Enabled: false}},
		{Target: infrast.UnitDorm, Change: infrast.NotStationed{Enabled: true}},
		{Target: infrast.UnitInfo, Change: infrast.MoodThreshold{Value: 0.5}},
	}

	require.NoError(t, catalogue.Apply(patches))

	mfg := catalogue.Unit(infrast.UnitMfg).Settings()
	assert.Equal(t, "Money", mfg.DroneMode)
	assert.True(t, mfg.ShardReplenish)

	dorm := catalogue.Unit(infrast.UnitDorm).Settings()
	assert.False(t, dorm.TrustEnabled)
	assert.True(t, dorm.NotStationedEnabled)

	assert.InDelta(t, 0.5, catalogue.Info().Settings().MoodThreshold, 1e-9)
}

func TestCatalogue_ApplyIsIdempotent(t *testing.T) {
	catalogue := infrast.NewCatalogue()
	patches := []infrast.Patch{
		{Target: infrast.UnitTrade, Change: infrast.DroneRedirect{Config: &infrast.DronesConfig{SlotIndex: 2, Order: infrast.OrderPost}}},
		{Target: infrast.UnitTrade, Change: infrast.MoodThreshold{Value: 0.3}},
	}

	require.NoError(t, catalogue.Apply(patches))
	first := catalogue.Unit(infrast.UnitTrade).Settings()
	require.NoError(t, catalogue.Apply(patches))

	assert.Equal(t, first, catalogue.Unit(infrast.UnitTrade).Settings())
}

func TestCatalogue_ApplyRejectsForeignTarget(t *testing.T) {
	catalogue := infrast.NewCatalogue()
	patches := []infrast.Patch{
		{Target: infrast.UnitInfo, Change: infrast.MoodThreshold{Value: 0.9}},
		{Target: infrast.UnitSpecialDorm, Change: infrast.MoodThreshold{Value: 0.9}},
	}

	err := catalogue.Apply(patches)

	require.Error(t, err)
	assert.Zero(t, catalogue.Info().Settings().MoodThreshold)
}

func TestDroneRedirect_NilClears(t *testing.T) {
	unit := infrast.NewUnit(infrast.UnitMfg)
	unit.Apply(infrast.DroneRedirect{Config: &infrast.DronesConfig{SlotIndex: 1}})
	require.NotNil(t, unit.Settings().Drones)

	unit.Apply(infrast.DroneRedirect{})

	assert.Nil(t, unit.Settings().Drones)
}

func TestUnit_SettingsReturnsCopy(t *testing.T) {
	unit := infrast.NewUnit(infrast.UnitPower)
	unit.Apply(infrast.FacilityLayout{Rooms: infrast.FacilityConfig{{Names: []string{"Pozëmka"}}}})

	settings := unit.Settings()
	settings.Layout[0].Names[0] = "Texas"

	assert.Equal(t, "Pozëmka", unit.Settings().Layout[0].Names[0])
}

func TestPlan_LayoutPatchesInFacilityOrder(t *testing.T) {
	plan := &infrast.Plan{
		Facilities: map[infrast.FacilityKind]infrast.FacilityConfig{
			infrast.FacilityControl: {{Names: []string{"Amiya"}}},
			infrast.FacilityDorm:    {{Autofill: true}},
			infrast.FacilityMfg:     {{Sort: true}},
		},
	}

	patches := plan.LayoutPatches()

	require.Len(t, patches, 3)
	assert.Equal(t, infrast.UnitDorm, patches[0].Target)
	assert.Equal(t, infrast.UnitMfg, patches[1].Target)
	assert.Equal(t, infrast.UnitControl, patches[2].Target)
}

func TestSpecialOperator_Layout(t *testing.T) {
	special := infrast.SpecialOperator{Target: "Kal'tsit", Order: infrast.OrderPre}

	layout := special.Layout()

	require.Len(t, layout, 1)
	assert.True(t, layout[0].Sort)
	assert.Equal(t, []string{"Kal'tsit", infrast.SpecialOperatorAlias}, layout[0].Names)
}
