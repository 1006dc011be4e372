package upgrade

// Spec holds the tunable price parameters of one purchasable upgrade.
type Spec struct {
	BaseCost     float64
	Growth       float64
	MaxPurchases int // 0 means unlimited
}

// DefaultSpecs returns the stock price curves.
func DefaultSpecs() map[Kind]Spec {
	return map[Kind]Spec{
		KindAppendFloor:         {BaseCost: 10, Growth: 1.5},
		KindAppendElevator:      {BaseCost: 100, Growth: 1.9},
		KindAddFloorCapacity:    {BaseCost: 10, Growth: 1.1},
		KindAddElevatorCapacity: {BaseCost: 10, Growth: 1.1},
	}
}

var descriptions = map[Kind][2]string{
	KindCollectTips:         {"Collect Tips", "Collect the tips accumulated by your building"},
	KindAppendFloor:         {"Add Floor", "Adds a new floor to your building"},
	KindAppendElevator:      {"Add Elevator", "Adds a new elevator to your building"},
	KindAddFloorCapacity:    {"Add Floor Capacity", "Adds more capacity to your floors"},
	KindAddElevatorCapacity: {"Add Elevator Capacity", "Adds more capacity to your elevators"},
}

// Catalog is the fixed set of upgrades of one game, one per kind.
// Entries are never added or removed after construction.
type Catalog struct {
	upgrades map[Kind]*Upgrade
}

// NewCatalog creates a catalog with the stock price curves.
func NewCatalog() *Catalog {
	return NewCatalogFrom(DefaultSpecs())
}

// NewCatalogFrom creates a catalog using the given price curves.
// Kinds missing from specs fall back to the stock curve.
func NewCatalogFrom(specs map[Kind]Spec) *Catalog {
	defaults := DefaultSpecs()
	c := &Catalog{upgrades: make(map[Kind]*Upgrade, len(kinds))}

	text := descriptions[KindCollectTips]
	c.upgrades[KindCollectTips] = NewFree(KindCollectTips, text[0], text[1])

	for _, kind := range purchasable {
		spec, ok := specs[kind]
		if !ok {
			spec = defaults[kind]
		}
		text := descriptions[kind]
		u := New(kind, text[0], text[1], spec.BaseCost, spec.Growth)
		if spec.MaxPurchases > 0 {
			u.MaxPurchases = spec.MaxPurchases
		}
		c.upgrades[kind] = u
	}
	return c
}

// Get returns the upgrade of the given kind. The kind must be one of Kinds().
func (c *Catalog) Get(kind Kind) *Upgrade {
	u, ok := c.upgrades[kind]
	if !ok {
		panic("upgrade: unknown kind " + string(kind))
	}
	return u
}

// Each calls fn for every upgrade in catalog order.
func (c *Catalog) Each(fn func(*Upgrade)) {
	for _, kind := range kinds {
		fn(c.upgrades[kind])
	}
}
