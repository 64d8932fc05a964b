package sim

import "github.com/vovakirdan/bunny-dash/internal/core"

// Kind identifies an entity category.
type Kind int

const (
	KindHazard Kind = iota
	KindPickup
	KindPlatform
	KindBlock
	KindBird
	KindCandy

	kindCount
)

// Kinds lists every category in registry order.
var Kinds = [kindCount]Kind{KindHazard, KindPickup, KindPlatform, KindBlock, KindBird, KindCandy}

// String returns the category name used in config files.
func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "hazards"
	case KindPickup:
		return "pickups"
	case KindPlatform:
		return "platforms"
	case KindBlock:
		return "blocks"
	case KindBird:
		return "birds"
	case KindCandy:
		return "candies"
	default:
		return "unknown"
	}
}

// ParseKind maps a config category name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Entity is one live object in the arena. The set of implementations is
// closed; use a Visitor to handle every category.
type Entity interface {
	Kind() Kind
	Box() core.Box
	Accept(v Visitor)
	base() *body
}

// Visitor has one method per entity category. Adding a category breaks
// every implementation until it is handled.
type Visitor interface {
	VisitHazard(*Hazard)
	VisitPickup(*Pickup)
	VisitPlatform(*Platform)
	VisitBlock(*Block)
	VisitBird(*Bird)
	VisitCandy(*Candy)
}

// body is the state shared by every category.
type body struct {
	Footprint core.Box
	removed   bool
}

func (b *body) Box() core.Box { return b.Footprint }
func (b *body) base() *body   { return b }

// Removed reports whether the entity was destroyed this tick and is
// waiting to be swept.
func (b *body) Removed() bool { return b.removed }

// Hazard is a ground obstacle that costs health on contact.
type Hazard struct {
	body
}

func (*Hazard) Kind() Kind         { return KindHazard }
func (h *Hazard) Accept(v Visitor) { v.VisitHazard(h) }

// Pickup awards score; a powerup pickup also grants the shield.
type Pickup struct {
	body
	Value   int
	Tier    string
	Powerup bool
}

func (*Pickup) Kind() Kind         { return KindPickup }
func (p *Pickup) Accept(v Visitor) { v.VisitPickup(p) }

// Platform is a thin ledge the player can stand on.
type Platform struct {
	body
}

func (*Platform) Kind() Kind         { return KindPlatform }
func (p *Platform) Accept(v Visitor) { v.VisitPlatform(p) }

// BlockKind distinguishes plain blocks from reward-yielding ones.
type BlockKind int

const (
	BlockPlain BlockKind = iota
	BlockBonus
)

// Block is struck from below by an ascending player.
type Block struct {
	body
	Variant BlockKind
	Struck  bool
}

func (*Block) Kind() Kind         { return KindBlock }
func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

// Bird is an airborne hazard. Frame only drives the flap animation.
type Bird struct {
	body
	Frame   int
	flapAcc float64
}

func (*Bird) Kind() Kind         { return KindBird }
func (b *Bird) Accept(v Visitor) { v.VisitBird(b) }

// Candy is the per-level bonus item that unlocks the next level.
type Candy struct {
	body
	Collected bool
}

func (*Candy) Kind() Kind         { return KindCandy }
func (c *Candy) Accept(v Visitor) { v.VisitCandy(c) }
