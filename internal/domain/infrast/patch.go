package infrast

import "fmt"

// Patch is a configuration change addressed to one unit kind. The compiler
// produces patches; the owner of the units decides when to apply them.
type Patch struct {
	Target UnitKind
	Change Change
}

func (p Patch) String() string {
	return fmt.Sprintf("%s: %s", p.Target, p.Change.Describe())
}

// Change is one idempotent setting update. The set of changes is closed.
type Change interface {
	Describe() string
	apply(s *Settings)
}

// MoodThreshold sets the minimum mood fraction for assignment eligibility
type MoodThreshold struct {
	Value float64
}

func (c MoodThreshold) Describe() string { return fmt.Sprintf("mood_threshold=%.2f", c.Value) }
func (c MoodThreshold) apply(s *Settings) { s.MoodThreshold = c.Value }

// DroneMode sets the blanket drone usage mode
type DroneMode struct {
	Mode          string
	PluginRetries int
}

func (c DroneMode) Describe() string {
	return fmt.Sprintf("drone_mode=%s plugin_retries=%d", c.Mode, c.PluginRetries)
}

func (c DroneMode) apply(s *Settings) {
	s.DroneMode = c.Mode
	s.DronePluginRetries = c.PluginRetries
}

// NotStationed toggles inclusion of not-stationed operators in the dormitory
type NotStationed struct {
	Enabled bool
}

func (c NotStationed) Describe() string { return fmt.Sprintf("notstationed=%t", c.Enabled) }
func (c NotStationed) apply(s *Settings) { s.NotStationedEnabled = c.Enabled }

// TrustOperators toggles filling spare dormitory slots with trust-farming operators
type TrustOperators struct {
	Enabled bool
}

func (c TrustOperators) Describe() string { return fmt.Sprintf("trust=%t", c.Enabled) }
func (c TrustOperators) apply(s *Settings) { s.TrustEnabled = c.Enabled }

// ShardReplenish toggles the manufacturing shard replenishment modifier
type ShardReplenish struct {
	Enabled bool
}

func (c ShardReplenish) Describe() string { return fmt.Sprintf("replenish=%t", c.Enabled) }
func (c ShardReplenish) apply(s *Settings) { s.ShardReplenish = c.Enabled }

// FacilityLayout installs a custom room layout
type FacilityLayout struct {
	Rooms FacilityConfig
}

func (c FacilityLayout) Describe() string { return fmt.Sprintf("layout rooms=%d", len(c.Rooms)) }
func (c FacilityLayout) apply(s *Settings) { s.Layout = c.Rooms.Clone() }

// DroneRedirect targets drones at one slot; a nil Config clears any previous redirect
type DroneRedirect struct {
	Config *DronesConfig
}

func (c DroneRedirect) Describe() string {
	if c.Config == nil {
		return "drones=none"
	}
	return fmt.Sprintf("drones slot=%d order=%s", c.Config.SlotIndex, c.Config.Order)
}

func (c DroneRedirect) apply(s *Settings) {
	if c.Config == nil {
		s.Drones = nil
		return
	}
	cfg := *c.Config
	s.Drones = &cfg
}
