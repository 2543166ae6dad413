package factory

import (
	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// Fixed product ids for the Halloween family.
const (
	SpiderProductID   = "101"
	SkeletonProductID = "102"
	ToffeeProductID   = "103"
)

// HalloweenFactory produces the Halloween product family: a remote
// controlled spider, a dancing skeleton, and pumpkin caramel toffee.
type HalloweenFactory struct{}

func (HalloweenFactory) CreateToy(d order.Details) (catalog.Product, error) {
	base := catalog.ToyBase{
		Name:         withDefault(d, "name", "RC Spider"),
		Description:  withDefault(d, "description", "Remote controlled spider that jumps and glows"),
		ID:           withDefault(d, "product_id", SpiderProductID),
		HasBatteries: d.Bool("has_batteries"),
		MinAge:       d.Int("min_age"),
	}
	spiderType, err := require(d, "spider_type")
	if err != nil {
		return nil, err
	}
	return catalog.NewRCSpider(base, d.Int("speed"), d.Int("jump_height"), d.Bool("has_glow"), spiderType)
}

func (HalloweenFactory) CreateStuffedAnimal(d order.Details) (catalog.Product, error) {
	base := catalog.StuffedAnimalBase{
		Name:        withDefault(d, "name", "Dancing Skeleton"),
		Description: withDefault(d, "description", "A skeleton that dances to spooky tunes"),
		ID:          withDefault(d, "product_id", SkeletonProductID),
		Stuffing:    withDefault(d, "stuffing", "Polyester Fibrefill"),
		Size:        withDefault(d, "size", "Medium"),
		Fabric:      withDefault(d, "fabric", "Acrylic"),
	}
	return catalog.NewDancingSkeleton(base, d.Bool("has_glow"))
}

func (HalloweenFactory) CreateCandy(d order.Details) (catalog.Product, error) {
	base := catalog.CandyBase{
		Name:        withDefault(d, "name", "Pumpkin Caramel Toffee"),
		Description: withDefault(d, "description", "Chewy pumpkin-spiced caramel toffee"),
		ID:          withDefault(d, "product_id", ToffeeProductID),
		HasNuts:     d.Bool("has_nuts"),
		HasLactose:  d.Bool("has_lactose"),
	}
	return catalog.NewPumpkinToffee(base, d.String("variety"))
}
