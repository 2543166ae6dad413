package inventory

// StockLevel is the coarse stock tier reported by the inventory check.
type StockLevel int

const (
	OutOfStock StockLevel = iota
	VeryLowStock
	LowStock
	InStock
)

// LevelFor maps an on-hand count to its tier: more than 10 is in stock,
// 4 to 10 is low, 1 to 3 is very low, 0 is out of stock.
func LevelFor(count int) StockLevel {
	switch {
	case count > 10:
		return InStock
	case count >= 4:
		return LowStock
	case count >= 1:
		return VeryLowStock
	default:
		return OutOfStock
	}
}

func (l StockLevel) String() string {
	switch l {
	case InStock:
		return "in stock"
	case LowStock:
		return "low stock"
	case VeryLowStock:
		return "very low stock"
	default:
		return "out of stock"
	}
}
