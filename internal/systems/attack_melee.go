package systems

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// MeleeAttack — хитбокс у владельца. Следует за ним всё время жизни,
// стены не проверяет. Каждую цель бьёт не больше одного раза.
type MeleeAttack struct {
	InstanceCore
	Offset domain.Vec2 `json:"offset"`
	Half   domain.Vec2 `json:"half"`
	Cleave bool        `json:"cleave"`
}

func newMeleeAttack(id types.EntityID, spec domain.AttackSpec) *MeleeAttack {
	def := spec.Def
	// Хитбокс вытянут вдоль преобладающей оси удара.
	half := domain.Vec2{X: def.Reach / 2, Y: def.Width / 2}
	if math.Abs(spec.Dir.Y) > math.Abs(spec.Dir.X) {
		half = domain.Vec2{X: def.Width / 2, Y: def.Reach / 2}
	}
	return &MeleeAttack{
		InstanceCore: newCore(id, spec, def.Lifetime, 0),
		Offset:       spec.Offset,
		Half:         half,
		Cleave:       def.Cleave,
	}
}

func (m *MeleeAttack) Bounds() domain.Rect {
	return domain.RectAround(m.Pos, m.Half)
}

func (m *MeleeAttack) Advance(env *StepEnv, dt float64) bool {
	if owner := env.Actor(m.OwnerID); owner != nil && !owner.IsDead() {
		m.Pos = owner.Center().Add(m.Offset)
	}
	return m.age(dt)
}

func (m *MeleeAttack) ResolveWall(*StepEnv) bool {
	return true
}

func (m *MeleeAttack) Overlaps(_ *StepEnv, target *domain.Actor) bool {
	return m.Bounds().Intersects(target.Body.Bounds())
}

// AfterHit — без cleave удар гаснет на первой цели.
func (m *MeleeAttack) AfterHit(*StepEnv, *domain.Actor) bool {
	return m.Cleave
}
