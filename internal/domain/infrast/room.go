package infrast

// RoomConfig describes how one room slot of a facility is staffed.
//
// Names are hard requirements, assigned in priority order. Candidates are a
// fallback pool consulted only when named operators are unavailable. The two
// lists are never merged or reordered relative to each other.
type RoomConfig struct {
	Skip       bool
	Autofill   bool
	Sort       bool
	Product    *ProductKind
	Names      []string
	Candidates []string
}

// FacilityConfig is the ordered room layout of one facility; index is the room index
type FacilityConfig []RoomConfig

// Clone returns a deep copy so a stored layout never aliases a caller's slices
func (fc FacilityConfig) Clone() FacilityConfig {
	if fc == nil {
		return nil
	}

	out := make(FacilityConfig, len(fc))
	for i, room := range fc {
		out[i] = room
		if room.Product != nil {
			product := *room.Product
			out[i].Product = &product
		}
		out[i].Names = append([]string(nil), room.Names...)
		out[i].Candidates = append([]string(nil), room.Candidates...)
	}
	return out
}

// Order places a side effect before or after the owning room's own execution
type Order string

const (
	OrderPre  Order = "pre"
	OrderPost Order = "post"
)

// ParseOrder resolves an order field; empty means pre
func ParseOrder(value string) (Order, error) {
	switch Order(value) {
	case "", OrderPre:
		return OrderPre, nil
	case OrderPost:
		return OrderPost, nil
	}
	return "", &ErrInvalidOrder{Value: value}
}

// DronesConfig redirects drone usage to one equipment slot of a trade or mfg room
type DronesConfig struct {
	SlotIndex  int // zero-based
	Order      Order
	TargetRoom FacilityKind
}

// DroneTargetFromRoom resolves a drone target room named with the plan vocabulary
func DroneTargetFromRoom(room string) (FacilityKind, error) {
	switch room {
	case PlanKeyTrading:
		return FacilityTrade, nil
	case PlanKeyManufacture:
		return FacilityMfg, nil
	}
	return "", &ErrUnknownDroneRoom{Room: room}
}
