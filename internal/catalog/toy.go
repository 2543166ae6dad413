package catalog

// ToyBase carries the field set shared by every toy variant. A variant
// cannot exist without a fully populated base.
type ToyBase struct {
	Name         string
	Description  string
	ID           string
	HasBatteries bool
	MinAge       int
}

func (b ToyBase) validate() error {
	switch {
	case b.Name == "":
		return missingField("name")
	case b.Description == "":
		return missingField("description")
	case b.ID == "":
		return missingField("product_id")
	}
	return nil
}

func (b ToyBase) ProductName() string       { return b.Name }
func (b ToyBase) ProductID() string         { return b.ID }
func (b ToyBase) ProductCategory() Category { return CategoryToy }

// SpiderTypes is the closed domain for the RC spider's spider_type field.
var SpiderTypes = []string{"Tarantula", "Wolf Spider"}

// RCSpider is the Halloween toy: a remote-controlled spider.
type RCSpider struct {
	ToyBase
	Speed      int
	JumpHeight int
	HasGlow    bool
	SpiderType string
}

// NewRCSpider validates the base fields and the spider type domain.
func NewRCSpider(base ToyBase, speed, jumpHeight int, hasGlow bool, spiderType string) (*RCSpider, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	st, err := inDomain("spider_type", spiderType, SpiderTypes)
	if err != nil {
		return nil, err
	}
	return &RCSpider{
		ToyBase:    base,
		Speed:      speed,
		JumpHeight: jumpHeight,
		HasGlow:    hasGlow,
		SpiderType: st,
	}, nil
}

// SantasWorkshop is the Christmas toy: a miniature workshop play set.
type SantasWorkshop struct {
	ToyBase
	Dimensions string
	NumRooms   int
}

func NewSantasWorkshop(base ToyBase, dimensions string, numRooms int) (*SantasWorkshop, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	return &SantasWorkshop{ToyBase: base, Dimensions: dimensions, NumRooms: numRooms}, nil
}

// RobotBunny is the Easter toy: a hopping robot bunny.
type RobotBunny struct {
	ToyBase
	NumSound int
	Colour   string
}

func NewRobotBunny(base ToyBase, numSound int, colour string) (*RobotBunny, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	return &RobotBunny{ToyBase: base, NumSound: numSound, Colour: colour}, nil
}
