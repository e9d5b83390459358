package infrast

// FacilityKind identifies one facility of the base and, through UnitKind,
// the single catalogue unit that automates it.
type FacilityKind string

const (
	FacilityDorm      FacilityKind = "Dorm"
	FacilityMfg       FacilityKind = "Mfg"
	FacilityTrade     FacilityKind = "Trade"
	FacilityPower     FacilityKind = "Power"
	FacilityOffice    FacilityKind = "Office"
	FacilityReception FacilityKind = "Reception"
	FacilityControl   FacilityKind = "Control"
)

// AllFacilities lists every facility kind in display order
var AllFacilities = []FacilityKind{
	FacilityDorm,
	FacilityMfg,
	FacilityTrade,
	FacilityPower,
	FacilityOffice,
	FacilityReception,
	FacilityControl,
}

// ParseFacilityKind resolves a display name from the quick facility list.
// Matching is exact and case-sensitive.
func ParseFacilityKind(name string) (FacilityKind, error) {
	switch FacilityKind(name) {
	case FacilityDorm, FacilityMfg, FacilityTrade, FacilityPower,
		FacilityOffice, FacilityReception, FacilityControl:
		return FacilityKind(name), nil
	}
	return "", &ErrUnknownFacility{Name: name}
}

// Plan documents name facilities with their own lowercase vocabulary
const (
	PlanKeyControl     = "control"
	PlanKeyManufacture = "manufacture"
	PlanKeyTrading     = "trading"
	PlanKeyPower       = "power"
	PlanKeyMeeting     = "meeting"
	PlanKeyHire        = "hire"
	PlanKeyDormitory   = "dormitory"
)

// FacilityFromPlanKey resolves a facility key found under a plan's rooms mapping
func FacilityFromPlanKey(key string) (FacilityKind, error) {
	switch key {
	case PlanKeyControl:
		return FacilityControl, nil
	case PlanKeyManufacture:
		return FacilityMfg, nil
	case PlanKeyTrading:
		return FacilityTrade, nil
	case PlanKeyPower:
		return FacilityPower, nil
	case PlanKeyMeeting:
		return FacilityReception, nil
	case PlanKeyHire:
		return FacilityOffice, nil
	case PlanKeyDormitory:
		return FacilityDorm, nil
	}
	return "", &ErrUnknownPlanFacility{Key: key}
}

// UnitKind returns the catalogue unit that automates this facility
func (f FacilityKind) UnitKind() UnitKind {
	switch f {
	case FacilityDorm:
		return UnitDorm
	case FacilityMfg:
		return UnitMfg
	case FacilityTrade:
		return UnitTrade
	case FacilityPower:
		return UnitPower
	case FacilityOffice:
		return UnitOffice
	case FacilityReception:
		return UnitReception
	case FacilityControl:
		return UnitControl
	}
	panic("infrast: unhandled facility kind " + string(f))
}

func (f FacilityKind) String() string {
	return string(f)
}
