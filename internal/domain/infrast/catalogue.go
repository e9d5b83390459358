package infrast

import "fmt"

// Catalogue owns exactly one unit per catalogue kind plus the shared anchor
// for the lifetime of a session. Sequences borrow these units; nothing in the
// compiler copies or discards them.
type Catalogue struct {
	anchor *Unit
	units  map[UnitKind]*Unit
}

// NewCatalogue allocates the anchor and one unit per mood-tracked kind
func NewCatalogue() *Catalogue {
	c := &Catalogue{
		anchor: NewUnit(UnitAnchor),
		units:  make(map[UnitKind]*Unit, len(MoodUnits)),
	}
	for _, kind := range MoodUnits {
		c.units[kind] = NewUnit(kind)
	}
	return c
}

// Anchor returns the shared return-to-overview unit
func (c *Catalogue) Anchor() *Unit {
	return c.anchor
}

// Info returns the overview info unit
func (c *Catalogue) Info() *Unit {
	return c.units[UnitInfo]
}

// Facility returns the unit that automates a facility
func (c *Catalogue) Facility(kind FacilityKind) *Unit {
	return c.units[kind.UnitKind()]
}

// Unit returns the catalogue unit of a kind, or nil for kinds outside the catalogue
func (c *Catalogue) Unit(kind UnitKind) *Unit {
	if kind == UnitAnchor {
		return c.anchor
	}
	return c.units[kind]
}

// Apply applies patches in order. Every target must be a catalogue unit; the
// whole batch is checked before the first change is made.
func (c *Catalogue) Apply(patches []Patch) error {
	for _, p := range patches {
		if c.Unit(p.Target) == nil {
			return fmt.Errorf("patch targets unit %q outside the catalogue", p.Target)
		}
	}
	for _, p := range patches {
		c.Unit(p.Target).Apply(p.Change)
	}
	return nil
}
