package factory

import (
	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// Fixed product ids for the Easter family. Creme eggs keep their original
// catalogue id.
const (
	RobotBunnyProductID  = "301"
	EasterBunnyProductID = "302"
	CremeEggsProductID   = "111"
)

// EasterFactory produces the Easter product family: a robot bunny, an
// Easter bunny, and creme eggs.
type EasterFactory struct{}

func (EasterFactory) CreateToy(d order.Details) (catalog.Product, error) {
	base := catalog.ToyBase{
		Name:         withDefault(d, "name", "Robot Bunny"),
		Description:  withDefault(d, "description", "A hopping robot bunny with sound effects"),
		ID:           withDefault(d, "product_id", RobotBunnyProductID),
		HasBatteries: d.Bool("has_batteries"),
		MinAge:       d.Int("min_age"),
	}
	return catalog.NewRobotBunny(base, d.Int("num_sound"), d.String("colour"))
}

func (EasterFactory) CreateStuffedAnimal(d order.Details) (catalog.Product, error) {
	base := catalog.StuffedAnimalBase{
		Name:        withDefault(d, "name", "Easter Bunny"),
		Description: withDefault(d, "description", "A soft Easter bunny"),
		ID:          withDefault(d, "product_id", EasterBunnyProductID),
		Stuffing:    withDefault(d, "stuffing", "Polyester Fibrefill"),
		Size:        withDefault(d, "size", "Small"),
		Fabric:      withDefault(d, "fabric", "Linen"),
	}
	colour, err := require(d, "colour")
	if err != nil {
		return nil, err
	}
	return catalog.NewEasterBunny(base, colour)
}

func (EasterFactory) CreateCandy(d order.Details) (catalog.Product, error) {
	base := catalog.CandyBase{
		Name:        withDefault(d, "name", "Creme Eggs"),
		Description: withDefault(d, "description", "Creme Eggs Candy"),
		ID:          withDefault(d, "product_id", CremeEggsProductID),
		HasNuts:     d.Bool("has_nuts"),
		HasLactose:  d.Bool("has_lactose"),
	}
	return catalog.NewCremeEggs(base, d.Int("pack_size"))
}
