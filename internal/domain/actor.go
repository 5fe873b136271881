package domain

import (
	"math"
	"math/rand"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// Actor — участник боя (игрок или враг).
//
// Класс хранится как неизменяемое определение из реестра, различия между
// видами задаются флагами способностей (CanDash, CanTeleport, CanParry),
// а не отдельными типами.
type Actor struct {
	ID    types.EntityID
	Team  string
	Class registry.ClassDef
	Body  *Body

	Action    *ActionState
	Movement  MovementState
	Status    StatusTable
	Cooldowns Cooldowns

	Level       int
	Experience  float64
	ExpToNext   float64
	StatPoints  int
	SkillPoints int

	// Base — статы класса плюс вложенные очки. Stats — с учётом бонусов.
	Base    registry.StatBlock
	Stats   registry.StatBlock
	Derived DerivedStats

	Health  Pool
	Mana    Pool
	Stamina Pool

	AttackCooldown float64
	Facing         Vec2

	Abilities   []string
	Spells      []string
	ActiveSpell int
	Skills      map[string]bool
	Equipment   [enums.EquipSlotCount]*registry.ItemDef

	rules registry.Rules
	reg   *registry.Registry
	rng   *rand.Rand

	deathPending bool
	killedBy     types.EntityID
}

// NewActor создаёт актёра первого уровня с полными ресурсами.
// rng обязателен: от него зависят криты, и для реплеев он должен быть сидирован.
func NewActor(
	id types.EntityID,
	class registry.ClassDef,
	team string,
	pos Vec2,
	reg *registry.Registry,
	rng *rand.Rand,
) *Actor {
	a := &Actor{
		ID:        id,
		Team:      team,
		Class:     class,
		Body:      NewBody(pos, class.Size, class.Size),
		Action:    NewActionState(),
		Cooldowns: NewCooldowns(),
		Level:     1,
		Base:      class.Stats,
		Facing:    Vec2{X: 1},
		Abilities: append([]string(nil), class.Abilities...),
		Spells:    append([]string(nil), class.Spells...),
		Skills:    make(map[string]bool),
		rules:     reg.Rules(),
		reg:       reg,
		rng:       rng,
	}
	a.Body.Friction = class.Friction
	a.Body.AddTag(team)
	a.ExpToNext = a.rules.Leveling.Threshold(a.Level)

	a.Recalculate()
	a.Health.Fill()
	a.Mana.Fill()
	a.Stamina.Fill()
	a.Body.MaxSpeed = a.EffectiveSpeed()
	return a
}

// Rules возвращает глобальные правила, с которыми создан актёр.
func (a *Actor) Rules() registry.Rules {
	return a.rules
}

// IsDead — смерть терминальна.
func (a *Actor) IsDead() bool {
	return a.Action.Is(ActionStateDead)
}

func (a *Actor) IsStunned() bool {
	return a.Status.Has(enums.EffectStun)
}

// IsInvulnerable — действует окно неуязвимости (рывок, телепорт, парирование, недавний удар).
func (a *Actor) IsInvulnerable() bool {
	return a.Movement.Invulnerable > 0
}

// IsHostileTo — актёры разных команд враждебны.
func (a *Actor) IsHostileTo(other *Actor) bool {
	return other != nil && other.ID != a.ID && !other.Body.HasTag(a.Team)
}

// Center возвращает центр тела.
func (a *Actor) Center() Vec2 {
	return a.Body.Pos
}

// canStartAction — жив, не оглушён и не заблокирован атакой или кастом.
func (a *Actor) canStartAction() bool {
	return !a.IsDead() && !a.IsStunned() && a.Action.Is(ActionStateIdle)
}

// EffectiveAttack — физическая сила с учётом баффов.
func (a *Actor) EffectiveAttack() float64 {
	return a.Derived.AttackDamage + a.Status.Magnitude(enums.EffectAttackUp)
}

// EffectiveMagic — магическая сила с учётом баффов.
func (a *Actor) EffectiveMagic() float64 {
	return a.Derived.MagicDamage + a.Status.Magnitude(enums.EffectAttackUp)
}

// EffectiveDefense — защита с учётом баффов.
func (a *Actor) EffectiveDefense() float64 {
	return a.Derived.Defense + a.Status.Magnitude(enums.EffectDefenseUp)
}

// EffectiveSpeed — скорость с учётом ускорения и замедления.
func (a *Actor) EffectiveSpeed() float64 {
	mul := 1 + a.Status.Magnitude(enums.EffectHaste) - a.Status.Magnitude(enums.EffectSlow)
	if mul < MinEffectiveSpeedMul {
		mul = MinEffectiveSpeedMul
	}
	return a.Derived.Speed * mul
}

// Move задаёт направление движения на текущий кадр. Интеграция и стены
// обрабатываются отдельно, после обновления таймеров.
func (a *Actor) Move(dir Vec2) bool {
	if a.IsDead() || a.IsStunned() || !dir.IsFinite() {
		a.Body.Acc = Vec2{}
		return false
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		a.Body.Acc = Vec2{}
		return false
	}
	a.Body.Acc = dir.Scale(a.EffectiveSpeed() * a.rules.MoveAcceleration)
	a.Facing = dir
	return true
}

// Update продвигает таймеры актёра: блокировку действий, перезарядки,
// рывок и парирование, и восстанавливает ману и выносливость.
// Статус-эффекты тикают отдельно (TickStatus), после разрешения боя.
func (a *Actor) Update(dt float64) {
	if a.IsDead() || !(dt > 0) {
		return
	}

	a.Action.Tick(dt)
	a.Movement.Tick(dt)
	a.Cooldowns.Tick(dt)
	a.AttackCooldown = countdown(a.AttackCooldown, dt)

	a.Mana.Restore(a.Derived.ManaRegen * dt)
	a.Stamina.Restore(a.Derived.StaminaRegen * dt)

	if a.IsStunned() {
		a.Body.Acc = Vec2{}
	}
	a.Body.MaxSpeed = a.EffectiveSpeed()
}

// ConsumeDeath возвращает факт смерти ровно один раз, вместе с убийцей.
func (a *Actor) ConsumeDeath() (types.EntityID, bool) {
	if !a.deathPending {
		return types.NilEntityID, false
	}
	a.deathPending = false
	return a.killedBy, true
}

// die — переход в терминальное состояние. Повторный вызов ничего не делает.
func (a *Actor) die(killer types.EntityID) {
	if !a.Action.Kill() {
		return
	}
	a.Health.Current = 0
	a.Body.Active = false
	a.Body.Vel = Vec2{}
	a.Body.Acc = Vec2{}
	a.Status.Clear()
	a.Movement = MovementState{}
	a.deathPending = true
	a.killedBy = killer
}

// aim возвращает единичное направление на точку, или взгляд, если точка совпадает с центром.
func (a *Actor) aim(target Vec2) Vec2 {
	if !target.IsFinite() {
		return a.Facing
	}
	dir := target.Sub(a.Center()).Normalize()
	if dir.IsZero() {
		return a.Facing
	}
	return dir
}

func (a *Actor) rollCrit(damage float64) (float64, bool) {
	if a.rng == nil || a.rng.Float64() >= a.Derived.CritChance {
		return damage, false
	}
	return math.Floor(damage * a.Derived.CritMultiplier), true
}
