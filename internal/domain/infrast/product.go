package infrast

// ProductKind is the output good a production room is asked to make
type ProductKind string

const (
	ProductBattleRecord   ProductKind = "Battle Record"
	ProductPureGold       ProductKind = "Pure Gold"
	ProductDualchip       ProductKind = "Dualchip"
	ProductOriginiumShard ProductKind = "Originium Shard"
	ProductLMD            ProductKind = "LMD"
	ProductOrundum        ProductKind = "Orundum"
)

// ParseProduct resolves a product name from a plan document.
// The empty string means the room is unconstrained and yields (nil, nil).
func ParseProduct(name string) (*ProductKind, error) {
	if name == "" {
		return nil, nil
	}

	var product ProductKind
	switch ProductKind(name) {
	case ProductBattleRecord:
		product = ProductBattleRecord
	case ProductPureGold:
		product = ProductPureGold
	case ProductDualchip:
		product = ProductDualchip
	case ProductOriginiumShard:
		product = ProductOriginiumShard
	case ProductLMD:
		product = ProductLMD
	case ProductOrundum:
		product = ProductOrundum
	default:
		return nil, &ErrUnknownProduct{Name: name}
	}
	return &product, nil
}
