package systems

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// Параметры деления снаряда при отскоке
const (
	splitAngle       = math.Pi / 4
	splitRadiusScale = 0.7
)

// Projectile — снаряд с бюджетом времени и/или дальности.
// Пробивание, отскоки, деление и самонаведение включаются полями определения.
type Projectile struct {
	InstanceCore
	Vel       domain.Vec2 `json:"vel"`
	Radius    float64     `json:"radius"`
	Range     float64     `json:"range"`
	Travelled float64     `json:"travelled"`

	Piercing    bool    `json:"piercing"`
	MaxPierce   int     `json:"maxPierce"`
	PierceDecay float64 `json:"pierceDecay"`
	Pierced     int     `json:"pierced"`

	Bounces int `json:"bounces"`
	Splits  int `json:"splits"`

	Homing       bool           `json:"homing"`
	TurnRate     float64        `json:"turnRate"`
	HomingRange  float64        `json:"homingRange"`
	HomingTarget types.EntityID `json:"homingTarget"`

	prevPos domain.Vec2
}

func newProjectile(id types.EntityID, spec domain.AttackSpec) *Projectile {
	def := spec.Def
	dir := spec.Dir.Normalize()
	if dir.IsZero() {
		dir = domain.Vec2{X: 1}
	}
	return &Projectile{
		InstanceCore: newCore(id, spec, def.Lifetime, 0),
		Vel:          dir.Scale(def.Speed),
		Radius:       def.Radius,
		Range:        def.Range,
		Piercing:     def.Piercing,
		MaxPierce:    def.MaxPierce,
		PierceDecay:  def.PierceDecay,
		Bounces:      def.Bounces,
		Splits:       def.Splits,
		Homing:       def.Homing,
		TurnRate:     def.TurnRate,
		HomingRange:  def.HomingRange,
		HomingTarget: spec.HomingTarget,
		prevPos:      spec.Origin,
	}
}

// Advance — сначала доворот к цели, затем интеграция, затем бюджет.
func (p *Projectile) Advance(env *StepEnv, dt float64) bool {
	if p.Homing {
		p.steer(env, dt)
	}

	p.prevPos = p.Pos
	step := p.Vel.Scale(dt)
	p.Pos = p.Pos.Add(step)
	p.Travelled += step.Len()

	if !p.age(dt) {
		return false
	}
	return p.Range <= 0 || p.Travelled < p.Range
}

// steer поворачивает скорость к цели не больше чем на TurnRate*dt.
// Цель захватывается лениво: ближайший враг в HomingRange.
func (p *Projectile) steer(env *StepEnv, dt float64) {
	target := env.Actor(p.HomingTarget)
	if target == nil || target.IsDead() || !target.Body.Active {
		target = NearestHostile(env.Actors(), p.Pos, p.Team, p.OwnerID, p.HomingRange)
		if target == nil {
			p.HomingTarget = types.NilEntityID
			return
		}
		p.HomingTarget = target.ID
	}

	want := target.Center().Sub(p.Pos)
	if want.IsZero() || p.Vel.IsZero() {
		return
	}
	diff := normalizeAngle(want.Angle() - p.Vel.Angle())
	limit := p.TurnRate * dt
	if p.TurnRate > 0 {
		diff = math.Max(-limit, math.Min(limit, diff))
	}
	p.Vel = p.Vel.Rotate(diff)
}

// ResolveWall — без зарядов отскока снаряд гибнет. Иначе отражается
// компонента скорости по оси, где сменилась клетка, снаряд возвращается
// на прошлую позицию и, если остались заряды деления, делится на два.
func (p *Projectile) ResolveWall(env *StepEnv) bool {
	if !env.blocked(p.Pos) {
		return true
	}
	if p.Bounces <= 0 {
		return false
	}

	ptx, pty := domain.WorldToTile(p.prevPos, env.TileSize)
	ntx, nty := domain.WorldToTile(p.Pos, env.TileSize)
	flipX := ptx != ntx
	flipY := pty != nty
	if flipX && flipY {
		// Угол: отражаем только по оси, которая действительно упёрлась.
		xBlocked := env.blocked(domain.Vec2{X: p.Pos.X, Y: p.prevPos.Y})
		yBlocked := env.blocked(domain.Vec2{X: p.prevPos.X, Y: p.Pos.Y})
		if xBlocked != yBlocked {
			flipX, flipY = xBlocked, yBlocked
		}
	}
	if !flipX && !flipY {
		flipX, flipY = true, true
	}
	if flipX {
		p.Vel.X = -p.Vel.X
	}
	if flipY {
		p.Vel.Y = -p.Vel.Y
	}
	p.Pos = p.prevPos
	p.Bounces--

	if p.Splits > 0 {
		p.Splits--
		p.split(env)
	}
	return true
}

// split порождает два дочерних снаряда под ±45° от отражённого курса
// с половинным уроном и уменьшенным радиусом. Остаток зарядов наследуется.
func (p *Projectile) split(env *StepEnv) {
	rangeLeft := p.Range - p.Travelled
	lifeLeft := p.Lifetime - p.Age
	if (p.Range > 0 && rangeLeft <= 0) || (p.Lifetime > 0 && lifeLeft <= 0) {
		return
	}
	for _, angle := range [2]float64{splitAngle, -splitAngle} {
		child := p.spec
		child.Origin = p.Pos
		child.Dir = p.Vel.Rotate(angle).Normalize()
		child.Damage = math.Max(1, math.Floor(p.Damage/2))
		child.HomingTarget = types.NilEntityID
		child.Source = p.spec.Source + ":split"

		def := child.Def
		def.Radius = p.Radius * splitRadiusScale
		def.Bounces = p.Bounces
		def.Splits = p.Splits
		if p.Range > 0 {
			def.Range = rangeLeft
		}
		if p.Lifetime > 0 {
			def.Lifetime = lifeLeft
		}
		child.Def = def

		env.Spawn(child)
	}
}

func (p *Projectile) Overlaps(_ *StepEnv, target *domain.Actor) bool {
	return target.Center().DistanceTo(p.Pos) <= p.Radius+target.Body.Radius()
}

// AfterHit — обычный снаряд гибнет на первой цели. Пробивающий ослабевает
// на PierceDecay за каждую цель и останавливается после MaxPierce целей.
func (p *Projectile) AfterHit(*StepEnv, *domain.Actor) bool {
	if !p.Piercing {
		return false
	}
	p.Pierced++
	if p.MaxPierce > 0 && p.Pierced >= p.MaxPierce {
		return false
	}
	p.Damage = math.Max(1, math.Floor(p.Damage*(1-p.PierceDecay)))
	return true
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
