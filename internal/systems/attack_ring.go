package systems

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// RingAttack — расширяющееся кольцо вокруг точки появления.
//
// Попадает полоса currentRadius - 2*Width < dist < currentRadius.
// Стены кольцо игнорирует. После достижения MaxRadius живёт ещё один кадр.
type RingAttack struct {
	InstanceCore
	Radius      float64 `json:"radius"`
	MaxRadius   float64 `json:"maxRadius"`
	ExpandSpeed float64 `json:"expandSpeed"`
	Width       float64 `json:"width"`

	reachedMax bool
}

func newRingAttack(id types.EntityID, spec domain.AttackSpec) *RingAttack {
	def := spec.Def
	return &RingAttack{
		InstanceCore: newCore(id, spec, def.Lifetime, def.TickRate),
		Radius:       def.StartRadius,
		MaxRadius:    def.MaxRadius,
		ExpandSpeed:  def.ExpandSpeed,
		Width:        def.RingWidth,
	}
}

func (r *RingAttack) Advance(_ *StepEnv, dt float64) bool {
	if r.reachedMax {
		return false
	}
	if !r.age(dt) {
		return false
	}
	r.Radius = math.Min(r.MaxRadius, r.Radius+r.ExpandSpeed*dt)
	if r.Radius >= r.MaxRadius {
		r.reachedMax = true
	}
	return true
}

func (r *RingAttack) ResolveWall(*StepEnv) bool {
	return true
}

func (r *RingAttack) Overlaps(_ *StepEnv, target *domain.Actor) bool {
	return InRingBand(target.Center().DistanceTo(r.Pos), r.Radius, r.Width)
}

func (r *RingAttack) AfterHit(*StepEnv, *domain.Actor) bool {
	return true
}

// InRingBand — попадание в полосу кольца, строго внутри границ.
func InRingBand(dist, radius, width float64) bool {
	return dist > radius-2*width && dist < radius
}
