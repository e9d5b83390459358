package infrast

import "github.com/andrescamacho/infrast-go/pkg/utils"

// UnitKind identifies a task unit the scheduler can run
type UnitKind string

const (
	UnitAnchor      UnitKind = "anchor"
	UnitInfo        UnitKind = "info"
	UnitDorm        UnitKind = "dorm"
	UnitMfg         UnitKind = "mfg"
	UnitTrade       UnitKind = "trade"
	UnitPower       UnitKind = "power"
	UnitOffice      UnitKind = "office"
	UnitReception   UnitKind = "reception"
	UnitControl     UnitKind = "control"
	UnitSpecialDorm UnitKind = "special_dorm"
)

// MoodUnits are the eight catalogue units that honour a mood threshold
var MoodUnits = []UnitKind{
	UnitInfo,
	UnitMfg,
	UnitTrade,
	UnitPower,
	UnitControl,
	UnitReception,
	UnitOffice,
	UnitDorm,
}

// DroneModeNotUse disables blanket drone usage
const DroneModeNotUse = "_NotUse"

// Settings is everything the compiler configures on a unit. The leaf action
// reads it when the scheduler runs the unit.
type Settings struct {
	MoodThreshold       float64
	DroneMode           string
	DronePluginRetries  int
	NotStationedEnabled bool
	TrustEnabled        bool
	ShardReplenish      bool
	Layout              FacilityConfig
	Drones              *DronesConfig
}

// Unit is a handle on one long-lived task unit
type Unit struct {
	id       string
	kind     UnitKind
	settings Settings
}

// NewUnit allocates a unit with a fresh identifier
func NewUnit(kind UnitKind) *Unit {
	return &Unit{
		id:   utils.GenerateUnitID(string(kind)),
		kind: kind,
		settings: Settings{
			DroneMode:    DroneModeNotUse,
			TrustEnabled: true,
		},
	}
}

func (u *Unit) ID() string {
	return u.id
}

func (u *Unit) Kind() UnitKind {
	return u.kind
}

// Settings returns a copy of the unit's current configuration
func (u *Unit) Settings() Settings {
	s := u.settings
	s.Layout = u.settings.Layout.Clone()
	if u.settings.Drones != nil {
		drones := *u.settings.Drones
		s.Drones = &drones
	}
	return s
}

// Apply applies one change to the unit
func (u *Unit) Apply(change Change) {
	change.apply(&u.settings)
}
