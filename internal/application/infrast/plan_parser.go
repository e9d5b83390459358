package infrast

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

// parsePlan selects plans[index] and builds it into a validated Plan value.
// Nothing is applied here; any error discards the whole plan.
func parsePlan(ctx context.Context, doc *PlanDocument, index int) (*domain.Plan, error) {
	logger := common.LoggerFromContext(ctx)

	if err := paramsValidator.Struct(doc); err != nil {
		return nil, formatValidationError(err)
	}

	if index < 0 || index >= len(doc.Plans) {
		return nil, &domain.ErrPlanIndexOutOfRange{Index: index, Size: len(doc.Plans)}
	}
	entry := doc.Plans[index]

	if err := paramsValidator.Struct(&entry); err != nil {
		return nil, formatValidationError(err)
	}

	plan := &domain.Plan{
		Facilities: make(map[domain.FacilityKind]domain.FacilityConfig, len(entry.Rooms)),
	}

	// sorted so the first reported error does not depend on map order
	keys := make([]string, 0, len(entry.Rooms))
	for key := range entry.Rooms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		facility, err := domain.FacilityFromPlanKey(key)
		if err != nil {
			return nil, err
		}

		layout, err := parseFacility(logger, key, entry.Rooms[key])
		if err != nil {
			return nil, err
		}
		plan.Facilities[facility] = layout
	}

	special, err := parseSpecialOperator(logger, entry.Fiammetta)
	if err != nil {
		return nil, err
	}
	plan.Special = special

	drones, err := parseDrones(logger, entry.Drones)
	if err != nil {
		return nil, err
	}
	plan.Drones = drones

	return plan, nil
}

func parseFacility(logger common.SessionLogger, key string, rooms []RoomEntry) (domain.FacilityConfig, error) {
	layout := make(domain.FacilityConfig, 0, len(rooms))

	for i, room := range rooms {
		product, err := domain.ParseProduct(room.Product)
		if err != nil {
			return nil, &domain.ErrUnknownProduct{Name: room.Product, Facility: key, Room: i}
		}

		layout = append(layout, domain.RoomConfig{
			Skip:       room.Skip,
			Autofill:   room.Autofill,
			Sort:       room.Sort,
			Product:    product,
			Names:      nonEmpty(logger, key, i, "operators", room.Operators),
			Candidates: nonEmpty(logger, key, i, "candidates", room.Candidates),
		})
	}

	return layout, nil
}

// nonEmpty drops empty names with a warning; they are not errors
func nonEmpty(logger common.SessionLogger, key string, room int, field string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			logger.Log(common.LevelWarn, fmt.Sprintf("%s.%s has an empty name", key, field), map[string]interface{}{
				"facility": key,
				"room":     room,
			})
			continue
		}
		out = append(out, name)
	}
	return out
}

func parseSpecialOperator(logger common.SessionLogger, entry *SpecialOperatorEntry) (*domain.SpecialOperator, error) {
	if entry == nil || !boolOr(entry.Enable, true) {
		return nil, nil
	}

	if entry.Target == "" {
		logger.Log(common.LevelWarn, "special operator target is unset or empty", nil)
		return nil, nil
	}

	order, err := domain.ParseOrder(entry.Order)
	if err != nil {
		return nil, fmt.Errorf("special operator: %w", err)
	}

	logger.Log(common.LevelDebug, "special operator target", map[string]interface{}{
		"target": entry.Target,
		"order":  string(order),
	})

	return &domain.SpecialOperator{Target: entry.Target, Order: order}, nil
}

func parseDrones(logger common.SessionLogger, entry *DronesEntry) (*domain.DronesConfig, error) {
	if entry == nil || !boolOr(entry.Enable, true) {
		return nil, nil
	}

	if entry.Room == "" {
		logger.Log(common.LevelWarn, "drones room is unset or empty", nil)
		return nil, nil
	}

	target, err := domain.DroneTargetFromRoom(entry.Room)
	if err != nil {
		return nil, err
	}

	order, err := domain.ParseOrder(entry.Order)
	if err != nil {
		return nil, fmt.Errorf("drones: %w", err)
	}

	index := 1
	if entry.Index != nil {
		index = *entry.Index
	}

	return &domain.DronesConfig{
		SlotIndex:  index - 1,
		Order:      order,
		TargetRoom: target,
	}, nil
}
