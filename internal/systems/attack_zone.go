package systems

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// ZoneAttack — неподвижная область, бьющая по каждой цели не чаще TickRate.
type ZoneAttack struct {
	InstanceCore
	Radius float64 `json:"radius"`

	warned bool
}

func newZoneAttack(id types.EntityID, spec domain.AttackSpec) *ZoneAttack {
	def := spec.Def
	return &ZoneAttack{
		InstanceCore: newCore(id, spec, def.Lifetime, def.TickRate),
		Radius:       def.Radius,
	}
}

func (z *ZoneAttack) Advance(_ *StepEnv, dt float64) bool {
	return z.age(dt)
}

func (z *ZoneAttack) ResolveWall(*StepEnv) bool {
	return true
}

// Overlaps — повреждённая геометрия (NaN/Inf) не бьёт никого,
// предупреждение пишется один раз на зону.
func (z *ZoneAttack) Overlaps(env *StepEnv, target *domain.Actor) bool {
	if !z.Pos.IsFinite() || !(z.Radius > 0) || z.Radius > maxZoneRadius {
		if !z.warned {
			z.warned = true
			env.log.WithField("attack_id", z.ID).Warn("Zone skipped: geometry is not finite.")
		}
		return false
	}
	return target.Center().DistanceTo(z.Pos) <= z.Radius
}

func (z *ZoneAttack) AfterHit(*StepEnv, *domain.Actor) bool {
	return true
}

// maxZoneRadius отсекает бесконечный радиус.
const maxZoneRadius = 1e9
