package infrast

// SpecialOperatorAlias is always appended after the special operator's target
const SpecialOperatorAlias = "菲亚梅塔"

// SpecialOperator asks for one extra dormitory pass that prioritizes Target
type SpecialOperator struct {
	Target string
	Order  Order
}

// Layout returns the single-room, sorted layout used by the special dormitory unit
func (s SpecialOperator) Layout() FacilityConfig {
	return FacilityConfig{
		{
			Sort:  true,
			Names: []string{s.Target, SpecialOperatorAlias},
		},
	}
}

// Plan is one fully validated custom plan. It is built completely before any
// of it is applied, so a rejected plan never leaves units half-configured.
type Plan struct {
	Facilities map[FacilityKind]FacilityConfig
	Special    *SpecialOperator
	Drones     *DronesConfig
}

// LayoutPatches turns the plan's room layouts into patches for catalogue
// units, in the fixed facility order of AllFacilities.
func (p *Plan) LayoutPatches() []Patch {
	var patches []Patch
	for _, facility := range AllFacilities {
		layout, ok := p.Facilities[facility]
		if !ok {
			continue
		}
		patches = append(patches, Patch{
			Target: facility.UnitKind(),
			Change: FacilityLayout{Rooms: layout.Clone()},
		})
	}
	return patches
}
