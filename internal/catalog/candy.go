package catalog

// CandyBase carries the field set shared by every candy variant.
type CandyBase struct {
	Name        string
	Description string
	ID          string
	HasNuts     bool
	HasLactose  bool
}

func (b CandyBase) validate() error {
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

func (b CandyBase) ProductName() string       { return b.Name }
func (b CandyBase) ProductID() string         { return b.ID }
func (b CandyBase) ProductCategory() Category { return CategoryCandy }

// PumpkinToffee is the Halloween candy: pumpkin caramel toffee.
type PumpkinToffee struct {
	CandyBase
	Flavour string
}

func NewPumpkinToffee(base CandyBase, flavour string) (*PumpkinToffee, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	return &PumpkinToffee{CandyBase: base, Flavour: flavour}, nil
}

// StripeColours is the closed domain for candy cane stripes.
var StripeColours = []string{"Red", "Green"}

// CandyCanes is the Christmas candy.
type CandyCanes struct {
	CandyBase
	StripeColour string
}

// NewCandyCanes validates the base fields and the stripe colour domain.
func NewCandyCanes(base CandyBase, stripeColour string) (*CandyCanes, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	sc, err := inDomain("colour", stripeColour, StripeColours)
	if err != nil {
		return nil, err
	}
	return &CandyCanes{CandyBase: base, StripeColour: sc}, nil
}

// CremeEggs is the Easter candy.
type CremeEggs struct {
	CandyBase
	PackSize int
}

func NewCremeEggs(base CandyBase, packSize int) (*CremeEggs, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	return &CremeEggs{CandyBase: base, PackSize: packSize}, nil
}
