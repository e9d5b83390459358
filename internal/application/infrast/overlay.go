package infrast

import (
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

// overlaySpecialOperator adds a freshly allocated dormitory unit for the
// plan's special operator. Pre order puts [anchor, special] in front of the
// lead-in; post order appends [special, anchor].
func overlaySpecialOperator(seq *domain.Sequence, anchor *domain.Unit, special *domain.SpecialOperator) *domain.Sequence {
	if special == nil {
		return seq
	}

	unit := domain.NewUnit(domain.UnitSpecialDorm)
	unit.Apply(domain.FacilityLayout{Rooms: special.Layout()})

	if special.Order == domain.OrderPost {
		return seq.WithSpecialPost(anchor, unit)
	}
	return seq.WithSpecialPre(anchor, unit)
}

// dronePatches hands drone behaviour to the plan. Both drone-capable units
// lose their blanket mode; the targeted one (if any) gets the redirect and
// the other has any earlier redirect cleared.
func dronePatches(drones *domain.DronesConfig) []domain.Patch {
	var patches []domain.Patch
	for _, facility := range []domain.FacilityKind{domain.FacilityMfg, domain.FacilityTrade} {
		var redirect *domain.DronesConfig
		if drones != nil && drones.TargetRoom == facility {
			cfg := *drones
			redirect = &cfg
		}
		patches = append(patches,
			domain.Patch{Target: facility.UnitKind(), Change: domain.DroneMode{Mode: domain.DroneModeNotUse}},
			domain.Patch{Target: facility.UnitKind(), Change: domain.DroneRedirect{Config: redirect}},
		)
	}
	return patches
}
