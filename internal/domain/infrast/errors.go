package infrast

import "fmt"

// ErrMissingFacilityList indicates the quick facility list is absent from the parameters
type ErrMissingFacilityList struct{}

func (e *ErrMissingFacilityList) Error() string {
	return "facility list is missing"
}

// ErrInvalidParam indicates a parameter whose JSON type does not match what
// the compile stage reading it expects
type ErrInvalidParam struct {
	Key string
	Err error
}

func (e *ErrInvalidParam) Error() string {
	return fmt.Sprintf("invalid %s param: %v", e.Key, e.Err)
}

func (e *ErrInvalidParam) Unwrap() error {
	return e.Err
}

// ErrInvalidFacilityEntry indicates a facility list element that is not a string
type ErrInvalidFacilityEntry struct {
	Position int
	Value    interface{}
}

func (e *ErrInvalidFacilityEntry) Error() string {
	return fmt.Sprintf("facility entry %d is not a string: %v", e.Position, e.Value)
}

// ErrUnknownFacility indicates a facility display name outside the catalogue
type ErrUnknownFacility struct {
	Name string
}

func (e *ErrUnknownFacility) Error() string {
	return fmt.Sprintf("unknown facility: %q", e.Name)
}

// ErrUnknownPlanFacility indicates a rooms key outside the plan vocabulary
type ErrUnknownPlanFacility struct {
	Key string
}

func (e *ErrUnknownPlanFacility) Error() string {
	return fmt.Sprintf("unknown plan facility: %q", e.Key)
}

// ErrUnknownProduct indicates a product name outside the product table
type ErrUnknownProduct struct {
	Name     string
	Facility string
	Room     int
}

func (e *ErrUnknownProduct) Error() string {
	if e.Facility != "" {
		return fmt.Sprintf("unknown product %q in %s room %d", e.Name, e.Facility, e.Room)
	}
	return fmt.Sprintf("unknown product %q", e.Name)
}

// ErrUnknownDroneRoom indicates a drones block targeting something other than trading or manufacture
type ErrUnknownDroneRoom struct {
	Room string
}

func (e *ErrUnknownDroneRoom) Error() string {
	return fmt.Sprintf("unknown drones room: %q", e.Room)
}

// ErrInvalidOrder indicates an order field other than pre or post
type ErrInvalidOrder struct {
	Value string
}

func (e *ErrInvalidOrder) Error() string {
	return fmt.Sprintf("invalid order %q: expected pre or post", e.Value)
}

// ErrPlanIndexOutOfRange indicates plan_index outside [0, len(plans))
type ErrPlanIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrPlanIndexOutOfRange) Error() string {
	return fmt.Sprintf("plan index %d out of range, plans size: %d", e.Index, e.Size)
}

// ErrMissingFilename indicates custom mode without a plan filename
type ErrMissingFilename struct{}

func (e *ErrMissingFilename) Error() string {
	return "custom mode requires a plan filename"
}
