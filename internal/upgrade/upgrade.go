// Package upgrade models the purchasable building upgrades and their
// escalating price curves.
package upgrade

import (
	"fmt"
	"math"
	"slices"
)

// Kind identifies one upgrade in a catalog.
type Kind string

const (
	KindCollectTips         Kind = "collect_tips"
	KindAppendFloor         Kind = "append_floor"
	KindAppendElevator      Kind = "append_elevator"
	KindAddFloorCapacity    Kind = "add_floor_capacity"
	KindAddElevatorCapacity Kind = "add_elevator_capacity"
)

var kinds = []Kind{
	KindCollectTips,
	KindAppendFloor,
	KindAppendElevator,
	KindAddFloorCapacity,
	KindAddElevatorCapacity,
}

var purchasable = []Kind{
	KindAppendFloor,
	KindAppendElevator,
	KindAddFloorCapacity,
	KindAddElevatorCapacity,
}

// Kinds lists every upgrade kind in catalog order.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// Purchasable lists the kinds that cost money, in the order the engine
// evaluates them within a tick.
func Purchasable() []Kind {
	return slices.Clone(purchasable)
}

// Unlimited is the purchase ceiling of an upgrade that can be bought forever.
const Unlimited = math.MaxInt

// Upgrade is a purchasable effect whose price grows with every purchase.
//
// The price after n purchases is BaseCost + Growth^n. A free upgrade always
// costs 0 and is always affordable.
type Upgrade struct {
	Kind         Kind
	Name         string
	Description  string
	BaseCost     float64
	Growth       float64
	MaxPurchases int
	Free         bool

	purchases int
}

// New creates an upgrade with no purchases and an unlimited ceiling.
func New(kind Kind, name, description string, baseCost, growth float64) *Upgrade {
	return &Upgrade{
		Kind:         kind,
		Name:         name,
		Description:  description,
		BaseCost:     baseCost,
		Growth:       growth,
		MaxPurchases: Unlimited,
	}
}

// NewFree creates an always-available, zero-cost upgrade.
func NewFree(kind Kind, name, description string) *Upgrade {
	return &Upgrade{
		Kind:         kind,
		Name:         name,
		Description:  description,
		Growth:       1,
		MaxPurchases: Unlimited,
		Free:         true,
	}
}

// Price returns what the next purchase costs.
func (u *Upgrade) Price() float64 {
	if u.Free {
		return 0
	}
	return u.BaseCost + math.Pow(u.Growth, float64(u.purchases))
}

// Affordable reports whether funds cover the next purchase.
func (u *Upgrade) Affordable(funds float64) bool {
	return funds >= u.Price()
}

// Available reports whether the ceiling still allows a purchase.
func (u *Upgrade) Available() bool {
	return u.purchases <= u.MaxPurchases
}

// Purchases returns how many times the upgrade has been bought.
func (u *Upgrade) Purchases() int {
	return u.purchases
}

// Purchase records one purchase and returns the price it was bought at.
// It never touches any funds; the caller checks Affordable first and
// deducts the returned price.
//
// Buying past the ceiling is a caller bug and panics before any mutation.
func (u *Upgrade) Purchase() float64 {
	if u.purchases > u.MaxPurchases {
		panic(fmt.Sprintf("upgrade: cannot buy %q past its limit of %d", u.Name, u.MaxPurchases))
	}
	price := u.Price()
	u.purchases++
	return price
}
