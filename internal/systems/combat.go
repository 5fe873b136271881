package systems

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Resolver владеет всеми живыми атаками и разбирает их столкновения.
//
// За тик каждый инстанс по порядку: двигается, проверяет бюджет, стены и цели.
// Попадания применяются последовательно в порядке появления инстансов и
// порядке списка актёров, на каждое попадание ровно один проход pipeline.
type Resolver struct {
	alloc   *types.Allocator
	live    []AttackInstance
	pending []domain.AttackSpec
	spawned []types.EntityID
	now     float64
	log     *logrus.Entry
}

// NewResolver создаёт пустой резолвер. gen — поколение идентификаторов атак.
func NewResolver(gen uint16) *Resolver {
	return &Resolver{
		alloc: types.NewAllocator(gen),
		log:   logger.For("combat_system"),
	}
}

// Spawn создаёт инстанс из описания атаки. Атаки, созданные до Tick,
// участвуют уже в этом тике.
func (r *Resolver) Spawn(spec domain.AttackSpec) (types.EntityID, bool) {
	spawnLogger := r.log.WithFields(logrus.Fields{
		"owner_id": spec.OwnerID,
		"kind":     spec.Kind,
		"source":   spec.Source,
	})

	var inst AttackInstance
	switch spec.Kind {
	case enums.AttackMelee:
		inst = newMeleeAttack(r.nextID(), spec)
	case enums.AttackProjectile:
		if !spec.Origin.IsFinite() || !spec.Dir.IsFinite() {
			spawnLogger.Warn("Projectile rejected: origin or direction is not finite.")
			return types.NilEntityID, false
		}
		inst = newProjectile(r.nextID(), spec)
	case enums.AttackRing:
		inst = newRingAttack(r.nextID(), spec)
	case enums.AttackZone:
		inst = newZoneAttack(r.nextID(), spec)
	default:
		spawnLogger.Warn("Attack rejected: unknown kind.")
		return types.NilEntityID, false
	}

	id := inst.Core().ID
	r.live = append(r.live, inst)
	r.spawned = append(r.spawned, id)
	spawnLogger.WithField("attack_id", id).Debug("Attack spawned.")
	return id, true
}

func (r *Resolver) nextID() types.EntityID {
	return r.alloc.Next(uint8(enums.EntityKindAttack), 0)
}

// Tick продвигает все атаки на dt и возвращает результаты кадра.
// Атаки, порождённые внутри тика (деление, OnExpire), начинают жить со следующего.
func (r *Resolver) Tick(dt float64, actors []*domain.Actor, grid domain.TileGrid, tileSize float64) []CombatResult {
	if !(dt > 0) {
		dt = 0
	}
	r.now += dt
	env := newStepEnv(grid, tileSize, r.now, actors, r.enqueue, r.log)

	var results []CombatResult
	for _, inst := range r.live {
		c := inst.Core()
		if !c.Active {
			continue
		}
		if !inst.Advance(env, dt) {
			r.finish(env, inst, "exhausted")
			continue
		}
		if !inst.ResolveWall(env) {
			r.finish(env, inst, "wall")
			continue
		}
		results = r.resolveTargets(env, inst, results)
	}

	r.compact()
	pending := r.pending
	r.pending = nil
	for _, spec := range pending {
		r.Spawn(spec)
	}
	return results
}

func (r *Resolver) enqueue(spec domain.AttackSpec) {
	r.pending = append(r.pending, spec)
}

func (r *Resolver) resolveTargets(env *StepEnv, inst AttackInstance, results []CombatResult) []CombatResult {
	c := inst.Core()
	for _, target := range env.actors {
		if !c.Active {
			break
		}
		if !IsCandidate(target, c.OwnerID, c.Team) || !c.canHit(target.ID, env.Now) {
			continue
		}
		if !inst.Overlaps(env, target) {
			continue
		}

		c.markHit(target.ID, env.Now)
		results = append(results, r.applyHit(env, inst, target))
		if !inst.AfterHit(env, target) {
			r.finish(env, inst, "spent")
		}
	}
	return results
}

// applyHit — один проход damage pipeline и вторичные эффекты.
// Вторичные эффекты накладываются только если урон прошёл.
func (r *Resolver) applyHit(env *StepEnv, inst AttackInstance, target *domain.Actor) CombatResult {
	c := inst.Core()
	owner := env.Actor(c.OwnerID)
	out := target.ApplyDamage(c.Damage, owner)

	res := CombatResult{
		TargetID: target.ID,
		SourceID: c.OwnerID,
		AttackID: c.ID,
		Amount:   out.Applied,
		IsCrit:   c.IsCrit,
		Kind:     resultKindFor(out),
		Killed:   out.Killed,
	}

	r.log.WithFields(logrus.Fields{
		"attack_id": c.ID,
		"target_id": target.ID,
		"damage":    c.Damage,
		"applied":   out.Applied,
		"stage":     out.Stage,
		"killed":    out.Killed,
	}).Debug("Attack landed.")

	if out.Applied > 0 && !out.Killed {
		r.applySecondary(inst, target)
	}
	return res
}

func (r *Resolver) applySecondary(inst AttackInstance, target *domain.Actor) {
	c := inst.Core()
	def := c.Def()

	if def.Knockback > 0 {
		dir := target.Center().Sub(c.Pos).Normalize()
		if p, ok := inst.(*Projectile); ok {
			dir = p.Vel.Normalize()
		}
		if dir.IsZero() {
			dir = c.spec.Dir.Normalize()
		}
		target.Body.Vel = target.Body.Vel.Add(dir.Scale(def.Knockback))
	}

	if def.Stun > 0 {
		target.AddStatus(domain.NewStatusEffect(registry.EffectDef{
			Kind:     enums.EffectStun,
			Duration: def.Stun,
		}, c.OwnerID))
	}

	for _, effect := range def.OnHit {
		target.AddStatus(domain.NewStatusEffect(effect, c.OwnerID))
	}

	if effect, ok := domain.ElementEffect(c.Element); ok {
		target.AddStatus(domain.NewStatusEffect(effect, c.OwnerID))
	}
}

// finish гасит инстанс и, если задан OnExpire, ставит в очередь атаку на его месте.
func (r *Resolver) finish(env *StepEnv, inst AttackInstance, reason string) {
	c := inst.Core()
	c.Active = false
	r.log.WithFields(logrus.Fields{
		"attack_id": c.ID,
		"reason":    reason,
		"hits":      c.HitCount(),
	}).Debug("Attack finished.")

	if next, ok := c.spec.ExpireSpec(c.Pos); ok && c.Pos.IsFinite() {
		env.Spawn(next)
	}
}

func (r *Resolver) compact() {
	alive := r.live[:0]
	for _, inst := range r.live {
		if inst.Core().Active {
			alive = append(alive, inst)
		}
	}
	for i := len(alive); i < len(r.live); i++ {
		r.live[i] = nil
	}
	r.live = alive
}

// Live возвращает живые инстансы в порядке появления.
func (r *Resolver) Live() []AttackInstance {
	out := make([]AttackInstance, 0, len(r.live))
	for _, inst := range r.live {
		if inst.Core().Active {
			out = append(out, inst)
		}
	}
	return out
}

// Find возвращает живой инстанс по ID.
func (r *Resolver) Find(id types.EntityID) AttackInstance {
	for _, inst := range r.live {
		if c := inst.Core(); c.ID == id && c.Active {
			return inst
		}
	}
	return nil
}

// TakeSpawned возвращает ID атак, созданных с прошлого вызова.
func (r *Resolver) TakeSpawned() []types.EntityID {
	out := r.spawned
	r.spawned = nil
	return out
}

// Now — суммарное время резолвера.
func (r *Resolver) Now() float64 {
	return r.now
}
