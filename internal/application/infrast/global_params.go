package infrast

import (
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

// globalPatches produces the settings applied on every compile regardless of
// mode or lifecycle. In custom mode the plan owns drone behaviour, so the
// blanket drone mode is left out.
func globalPatches(params *Params) []domain.Patch {
	var patches []domain.Patch

	if !params.IsCustom() {
		mode := params.DroneMode()
		patches = append(patches,
			domain.Patch{Target: domain.UnitMfg, Change: domain.DroneMode{Mode: mode}},
			domain.Patch{Target: domain.UnitTrade, Change: domain.DroneMode{Mode: mode, PluginRetries: 0}},
		)
	}

	threshold := domain.MoodThreshold{Value: params.MoodThreshold()}
	for _, kind := range domain.MoodUnits {
		patches = append(patches, domain.Patch{Target: kind, Change: threshold})
	}

	patches = append(patches,
		domain.Patch{Target: domain.UnitDorm, Change: domain.NotStationed{Enabled: params.NotStationedEnabled()}},
		domain.Patch{Target: domain.UnitDorm, Change: domain.TrustOperators{Enabled: params.TrustEnabled()}},
		domain.Patch{Target: domain.UnitMfg, Change: domain.ShardReplenish{Enabled: params.ReplenishEnabled()}},
	)

	return patches
}
