package factory

import (
	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// Fixed product ids for the Christmas family.
const (
	WorkshopProductID  = "201"
	ReindeerProductID  = "202"
	CandyCaneProductID = "203"
)

// ChristmasFactory produces the Christmas product family: Santa's workshop,
// a reindeer, and candy canes.
type ChristmasFactory struct{}

func (ChristmasFactory) CreateToy(d order.Details) (catalog.Product, error) {
	base := catalog.ToyBase{
		Name:         withDefault(d, "name", "Santa's Workshop"),
		Description:  withDefault(d, "description", "Miniature of Santa's workshop at the North Pole"),
		ID:           withDefault(d, "product_id", WorkshopProductID),
		HasBatteries: d.Bool("has_batteries"),
		MinAge:       d.Int("min_age"),
	}
	return catalog.NewSantasWorkshop(base, d.String("dimensions"), d.Int("num_rooms"))
}

func (ChristmasFactory) CreateStuffedAnimal(d order.Details) (catalog.Product, error) {
	base := catalog.StuffedAnimalBase{
		Name:        withDefault(d, "name", "Reindeer"),
		Description: withDefault(d, "description", "A cuddly reindeer with a glowing red nose"),
		ID:          withDefault(d, "product_id", ReindeerProductID),
		Stuffing:    withDefault(d, "stuffing", "Wool"),
		Size:        withDefault(d, "size", "Medium"),
		Fabric:      withDefault(d, "fabric", "Cotton"),
	}
	return catalog.NewReindeer(base, d.Bool("has_glow"))
}

func (ChristmasFactory) CreateCandy(d order.Details) (catalog.Product, error) {
	base := catalog.CandyBase{
		Name:        withDefault(d, "name", "Candy Canes"),
		Description: withDefault(d, "description", "Striped peppermint candy canes"),
		ID:          withDefault(d, "product_id", CandyCaneProductID),
		HasNuts:     d.Bool("has_nuts"),
		HasLactose:  d.Bool("has_lactose"),
	}
	stripe, err := require(d, "colour")
	if err != nil {
		return nil, err
	}
	return catalog.NewCandyCanes(base, stripe)
}
