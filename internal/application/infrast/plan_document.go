package infrast

// PlanDocument is the raw shape of a custom plan file. Field tags cover both
// the JSON/JSONC and YAML encodings.
type PlanDocument struct {
	Plans []PlanEntry `json:"plans" yaml:"plans" validate:"required"`
}

// PlanEntry is one selectable plan
type PlanEntry struct {
	Name      string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Rooms     map[string][]RoomEntry `json:"rooms" yaml:"rooms" validate:"required"`
	Fiammetta *SpecialOperatorEntry  `json:"Fiammetta,omitempty" yaml:"Fiammetta,omitempty"`
	Drones    *DronesEntry           `json:"drones,omitempty" yaml:"drones,omitempty"`
}

// RoomEntry is one room slot as written in the document
type RoomEntry struct {
	Skip       bool     `json:"skip" yaml:"skip"`
	Autofill   bool     `json:"autofill" yaml:"autofill"`
	Sort       bool     `json:"sort" yaml:"sort"`
	Product    string   `json:"product,omitempty" yaml:"product,omitempty"`
	Operators  []string `json:"operators,omitempty" yaml:"operators,omitempty"`
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// SpecialOperatorEntry configures the extra dormitory pass
type SpecialOperatorEntry struct {
	Enable *bool  `json:"enable,omitempty" yaml:"enable,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Order  string `json:"order,omitempty" yaml:"order,omitempty"`
}

// DronesEntry configures drone redirection. Index is 1-based.
type DronesEntry struct {
	Enable *bool  `json:"enable,omitempty" yaml:"enable,omitempty"`
	Index  *int   `json:"index,omitempty" yaml:"index,omitempty" validate:"omitempty,min=1"`
	Order  string `json:"order,omitempty" yaml:"order,omitempty"`
	Room   string `json:"room,omitempty" yaml:"room,omitempty"`
}
