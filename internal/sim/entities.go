package sim

import (
	"math"

	"github.com/vovakirdan/tui-blasters/internal/core"
)

// Ship is the player's craft. Angle is in radians; -π/2 points up.
type Ship struct {
	X, Y       float64
	VX, VY     float64
	Angle      float64
	Radius     float64
	Cooldown   float64 // seconds until the next shot is allowed
	Invincible float64 // seconds of remaining spawn protection
	Thrusting  bool
}

// MuzzleOffset is how far past the hull a bullet appears.
const MuzzleOffset = 4.0

// NoseX returns the x coordinate of the ship's nose.
func (s Ship) NoseX() float64 { return s.X + math.Cos(s.Angle)*s.Radius }

// NoseY returns the y coordinate of the ship's nose.
func (s Ship) NoseY() float64 { return s.Y + math.Sin(s.Angle)*s.Radius }

// Muzzle returns the point where new bullets spawn.
func (s Ship) Muzzle() (x, y float64) {
	d := s.Radius + MuzzleOffset
	return s.X + math.Cos(s.Angle)*d, s.Y + math.Sin(s.Angle)*d
}

// Bullet is a player projectile.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Radius float64
	Hue    float64 // cosmetic color tag in degrees
}

// EnemyBullet is a projectile fired by a turret.
type EnemyBullet struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Radius float64
}

// Kind is the closed set of obstacle variants.
type Kind int

const (
	KindAsteroid Kind = iota
	KindCrate
	KindPillar
	KindTurret
	KindSupply
	KindPort
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindCrate:
		return "crate"
	case KindPillar:
		return "pillar"
	case KindTurret:
		return "turret"
	case KindSupply:
		return "supply"
	case KindPort:
		return "port"
	default:
		return "unknown"
	}
}

// Behavior is what happens when an obstacle is destroyed.
type Behavior int

const (
	BehaviorNone      Behavior = iota // award points only
	BehaviorSplit                     // spawn smaller children
	BehaviorGrantLife                 // add one life up to the cap
	BehaviorObjective                 // end the run with a victory
)

type kindTraits struct {
	behavior  Behavior
	round     bool // circle hitbox instead of a rectangle
	firesBack bool
}

var traits = [...]kindTraits{
	KindAsteroid: {behavior: BehaviorSplit, round: true},
	KindCrate:    {behavior: BehaviorNone},
	KindPillar:   {behavior: BehaviorNone},
	KindTurret:   {behavior: BehaviorNone, firesBack: true},
	KindSupply:   {behavior: BehaviorGrantLife},
	KindPort:     {behavior: BehaviorObjective},
}

func (k Kind) traits() kindTraits {
	if k < 0 || int(k) >= len(traits) {
		return kindTraits{}
	}
	return traits[k]
}

// Behavior returns the destruction behavior of the kind.
func (k Kind) Behavior() Behavior { return k.traits().behavior }

// Round reports whether the kind collides as a circle.
func (k Kind) Round() bool { return k.traits().round }

// FiresBack reports whether the kind shoots at the ship.
func (k Kind) FiresBack() bool { return k.traits().firesBack }

// Vertex is one point of a jagged asteroid outline, relative to the center.
type Vertex struct {
	X, Y float64
}

// Obstacle is anything the player can shoot or crash into.
// Round kinds use Radius; the rest use the W×H box centered on X, Y.
type Obstacle struct {
	Kind     Kind
	X, Y     float64
	VX, VY   float64
	Radius   float64
	W, H     float64
	HP       int
	Tier     int // asteroid size tier, 1 is the smallest
	Points   int
	Cooldown float64 // turret reload timer
	Spin     float64
	Angle    float64
	Outline  []Vertex
}

// Box returns the rectangle hitbox of the obstacle.
func (o Obstacle) Box() core.Box {
	return core.Box{CX: o.X, CY: o.Y, W: o.W, H: o.H}
}
