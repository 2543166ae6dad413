package catalog

// StuffedAnimalBase carries the field set shared by every stuffed animal
// variant.
type StuffedAnimalBase struct {
	Name        string
	Description string
	ID          string
	Stuffing    string
	Size        string
	Fabric      string
}

func (b StuffedAnimalBase) validate() error {
	switch {
	case b.Name == "":
		return missingField("name")
	case b.Description == "":
		return missingField("description")
	case b.ID == "":
		return missingField("product_id")
	case b.Stuffing == "":
		return missingField("stuffing")
	case b.Size == "":
		return missingField("size")
	case b.Fabric == "":
		return missingField("fabric")
	}
	return nil
}

func (b StuffedAnimalBase) ProductName() string       { return b.Name }
func (b StuffedAnimalBase) ProductID() string         { return b.ID }
func (b StuffedAnimalBase) ProductCategory() Category { return CategoryStuffedAnimal }

// DancingSkeleton is the Halloween stuffed animal.
type DancingSkeleton struct {
	StuffedAnimalBase
	HasGlow bool
}

func NewDancingSkeleton(base StuffedAnimalBase, hasGlow bool) (*DancingSkeleton, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	return &DancingSkeleton{StuffedAnimalBase: base, HasGlow: hasGlow}, nil
}

// Reindeer is the Christmas stuffed animal, optionally with a glowing nose.
type Reindeer struct {
	StuffedAnimalBase
	HasGlowNose bool
}

func NewReindeer(base StuffedAnimalBase, hasGlowNose bool) (*Reindeer, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	return &Reindeer{StuffedAnimalBase: base, HasGlowNose: hasGlowNose}, nil
}

// BunnyColours is the closed domain for the Easter bunny's colour field.
var BunnyColours = []string{"White", "Grey", "Pink", "Blue"}

// EasterBunny is the Easter stuffed animal.
type EasterBunny struct {
	StuffedAnimalBase
	Colour string
}

// NewEasterBunny validates the base fields and the colour domain.
func NewEasterBunny(base StuffedAnimalBase, colour string) (*EasterBunny, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	c, err := inDomain("colour", colour, BunnyColours)
	if err != nil {
		return nil, err
	}
	return &EasterBunny{StuffedAnimalBase: base, Colour: c}, nil
}
