package infrast

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

// Mode selects how the sequence is built
type Mode int

const (
	// ModeQuick builds the sequence from the flat facility list only
	ModeQuick Mode = 0
	// ModeCustom additionally applies a plan from a plan document
	ModeCustom Mode = 1
)

func (m Mode) String() string {
	if m == ModeCustom {
		return "custom"
	}
	return "quick"
}

// Parameter defaults
const (
	DefaultMoodThreshold       = 0.3
	DefaultNotStationedEnabled = false
	DefaultTrustEnabled        = true
	DefaultReplenish           = false
)

// Params are the task parameters handed to the compiler. Optional settings
// are pointers so an absent key can be told apart from a zero value.
//
// Keys only some compile stages read stay raw until that stage runs, so a
// badly typed facility list does not block global settings while executing.
type Params struct {
	Mode      Mode            `json:"mode"`
	Facility  json.RawMessage `json:"facility"`
	Drones    *string         `json:"drones"`
	Threshold *float64        `json:"threshold" validate:"omitempty,gte=0,lte=1"`

	DormNotStationedEnabled *bool `json:"dorm_notstationed_enabled"`
	// the key keeps the historical spelling used by existing clients
	DormTrustEnabled *bool `json:"drom_trust_enabled"`
	Replenish        *bool `json:"replenish"`

	Filename  json.RawMessage `json:"filename"`
	PlanIndex json.RawMessage `json:"plan_index"`
}

var paramsValidator = validator.New()

// DecodeParams decodes and validates a JSON parameter object. A failure here
// is an input-shape error: nothing has been compiled or applied yet.
func DecodeParams(raw []byte) (*Params, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		raw = []byte("{}")
	}

	var params Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to decode params: %w", err)
	}

	if err := paramsValidator.Struct(&params); err != nil {
		return nil, formatValidationError(err)
	}

	return &params, nil
}

// IsCustom reports whether a plan document should be applied. Any mode
// other than custom builds a quick list.
func (p *Params) IsCustom() bool {
	return p.Mode == ModeCustom
}

// HasFacilityList reports whether the facility key was present
func (p *Params) HasFacilityList() bool {
	return !isAbsent(p.Facility)
}

// FacilityList decodes the quick facility list. It returns nil without an
// error when the key is absent.
func (p *Params) FacilityList() ([]interface{}, error) {
	if isAbsent(p.Facility) {
		return nil, nil
	}
	var list []interface{}
	if err := json.Unmarshal(p.Facility, &list); err != nil {
		return nil, &domain.ErrInvalidParam{Key: "facility", Err: err}
	}
	return list, nil
}

// PlanFilename decodes the plan document path, empty when absent
func (p *Params) PlanFilename() (string, error) {
	if isAbsent(p.Filename) {
		return "", nil
	}
	var filename string
	if err := json.Unmarshal(p.Filename, &filename); err != nil {
		return "", &domain.ErrInvalidParam{Key: "filename", Err: err}
	}
	return filename, nil
}

// PlanIndexValue decodes the plan index, 0 when absent
func (p *Params) PlanIndexValue() (int, error) {
	if isAbsent(p.PlanIndex) {
		return 0, nil
	}
	var index int
	if err := json.Unmarshal(p.PlanIndex, &index); err != nil {
		return 0, &domain.ErrInvalidParam{Key: "plan_index", Err: err}
	}
	return index, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// DroneMode returns the blanket drone mode
func (p *Params) DroneMode() string {
	if p.Drones == nil {
		return domain.DroneModeNotUse
	}
	return *p.Drones
}

// MoodThreshold returns the mood threshold
func (p *Params) MoodThreshold() float64 {
	if p.Threshold == nil {
		return DefaultMoodThreshold
	}
	return *p.Threshold
}

// NotStationedEnabled returns the dormitory not-stationed flag
func (p *Params) NotStationedEnabled() bool {
	return boolOr(p.DormNotStationedEnabled, DefaultNotStationedEnabled)
}

// TrustEnabled returns the dormitory trust flag
func (p *Params) TrustEnabled() bool {
	return boolOr(p.DormTrustEnabled, DefaultTrustEnabled)
}

// ReplenishEnabled returns the shard replenishment flag
func (p *Params) ReplenishEnabled() bool {
	return boolOr(p.Replenish, DefaultReplenish)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(),
			e.Tag(),
			e.Value(),
		))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}
