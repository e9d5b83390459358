package infrast

import (
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

// buildQuickList turns the flat facility list into
// [anchor, info, (unit, anchor)...].
//
// An absent list fails with a nil sequence so the caller keeps what it had.
// Any invalid entry fails with the minimal [anchor] sequence; nothing built
// before the bad entry survives.
func buildQuickList(catalogue *domain.Catalogue, facility []interface{}) (*domain.Sequence, error) {
	if facility == nil {
		return nil, &domain.ErrMissingFacilityList{}
	}

	units := make([]*domain.Unit, 0, len(facility))
	for i, entry := range facility {
		name, ok := entry.(string)
		if !ok {
			return domain.MinimalSequence(catalogue.Anchor()), &domain.ErrInvalidFacilityEntry{Position: i, Value: entry}
		}

		kind, err := domain.ParseFacilityKind(name)
		if err != nil {
			return domain.MinimalSequence(catalogue.Anchor()), err
		}
		units = append(units, catalogue.Facility(kind))
	}

	return domain.NewQuickSequence(catalogue.Anchor(), catalogue.Info(), units), nil
}
