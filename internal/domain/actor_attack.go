package domain

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// attackChoice — выбранная атака и её параметры.
type attackChoice struct {
	def      registry.AttackDef
	power    float64
	cooldown float64
	manaCost float64
	source   string
}

// Attack пытается начать базовую атаку в сторону точки target.
//
// Отказ (nil) без изменений состояния, если актёр мёртв, оглушён, уже
// атакует или кастует, или не прошла перезарядка атаки.
// Вид атаки выбирается по приоритету: выбранное заклинание для классов
// с дальней магической атакой, атака оружия, атака класса, запасной удар.
func (a *Actor) Attack(target Vec2) *AttackSpec {
	if !a.canStartAction() || a.AttackCooldown > 0 {
		return nil
	}

	choice := a.selectAttack()
	if choice.manaCost > 0 && !a.Mana.Has(choice.manaCost) {
		return nil
	}
	if !a.Action.BeginAttack(a.rules.AttackLock) {
		return nil
	}

	a.Mana.Spend(choice.manaCost)
	a.AttackCooldown = choice.cooldown
	dir := a.aim(target)
	a.Facing = dir

	spec := a.buildSpec(choice.def, choice.power, dir, target, choice.source)
	return &spec
}

func (a *Actor) selectAttack() attackChoice {
	weapon := a.Equipment[enums.SlotWeapon]
	weaponDamage := 0.0
	cooldown := a.Class.AttackCooldown
	if weapon != nil {
		weaponDamage = weapon.Damage
	}

	classDefault := a.Class.DefaultAttack

	if classDefault != nil && classDefault.Kind == enums.AttackProjectile && len(a.Spells) > 0 {
		if id := a.CurrentSpell(); id != "" {
			if ab, ok := a.reg.Ability(id); ok && ab.Attack != nil && a.Mana.Has(ab.Attack.ManaCost) {
				return attackChoice{
					def:      *ab.Attack,
					power:    a.powerFor(*ab.Attack) + weaponDamage,
					cooldown: cooldown,
					manaCost: ab.Attack.ManaCost,
					source:   "spell:" + id,
				}
			}
		}
	}

	if weapon != nil && weapon.Attack != nil {
		if weapon.AttackCooldown > 0 {
			cooldown = weapon.AttackCooldown
		}
		return attackChoice{
			def:      *weapon.Attack,
			power:    a.powerFor(*weapon.Attack) + weaponDamage,
			cooldown: cooldown,
			manaCost: weapon.Attack.ManaCost,
			source:   "weapon:" + weapon.ID,
		}
	}

	if classDefault != nil {
		return attackChoice{
			def:      *classDefault,
			power:    a.powerFor(*classDefault) + weaponDamage,
			cooldown: cooldown,
			manaCost: classDefault.ManaCost,
			source:   "class:" + a.Class.ID,
		}
	}

	return attackChoice{
		def:      fallbackMelee,
		power:    a.EffectiveAttack() + weaponDamage,
		cooldown: cooldown,
		source:   "fallback",
	}
}

func (a *Actor) powerFor(def registry.AttackDef) float64 {
	if def.Magic {
		return a.EffectiveMagic()
	}
	return a.EffectiveAttack()
}

// buildSpec превращает определение атаки в AttackSpec с учётом позиции,
// направления и крита. Крит бросается на инжектированном rng.
func (a *Actor) buildSpec(def registry.AttackDef, power float64, dir, target Vec2, source string) AttackSpec {
	damage, crit := a.rollCrit(ScaleDamage(power, def))

	spec := AttackSpec{
		Kind:    def.Kind,
		OwnerID: a.ID,
		Team:    a.Team,
		Dir:     dir,
		Power:   power,
		Damage:  damage,
		IsCrit:  crit,
		Element: def.Element,
		Def:     def,
		Source:  source,
	}

	center := a.Center()
	switch def.Kind {
	case enums.AttackMelee:
		spec.Offset = dir.Scale(def.Reach/2 + a.Body.Radius())
		spec.Origin = center.Add(spec.Offset)
	case enums.AttackProjectile:
		spec.Origin = center.Add(dir.Scale(a.Body.Radius()))
	case enums.AttackZone:
		spec.Origin = center
		if target.IsFinite() {
			spec.Origin = target
			if def.Range > 0 && target.DistanceTo(center) > def.Range {
				spec.Origin = center.Add(dir.Scale(def.Range))
			}
		}
	default:
		spec.Origin = center
	}
	return spec
}

// CurrentSpell возвращает выбранное заклинание или пустую строку.
func (a *Actor) CurrentSpell() string {
	if len(a.Spells) == 0 {
		return ""
	}
	if a.ActiveSpell < 0 || a.ActiveSpell >= len(a.Spells) {
		a.ActiveSpell = 0
	}
	return a.Spells[a.ActiveSpell]
}

// CycleSpell переключает на следующее известное заклинание.
func (a *Actor) CycleSpell() bool {
	if a.IsDead() || len(a.Spells) < 2 {
		return false
	}
	a.ActiveSpell = (a.ActiveSpell + 1) % len(a.Spells)
	return true
}

// UseAbility применяет способность из слота index в сторону target.
//
// Отказ (nil) без изменений, если слота нет, способность не найдена или не
// открыта, идёт перезарядка, не хватает маны или выносливости, или актёр
// не может начать действие. При успехе списываются ресурсы, запускается
// перезарядка и, если у способности есть время каста, блокировка casting.
func (a *Actor) UseAbility(index int, target Vec2) *AbilityOutcome {
	id, def, ok := a.abilityReady(index)
	if !ok || !a.Action.BeginCast(def.CastTime) {
		return nil
	}

	a.Mana.Spend(def.ManaCost)
	a.Stamina.Spend(def.StaminaCost)
	a.Cooldowns.Start(id, def.Cooldown)

	out := &AbilityOutcome{AbilityID: id, Kind: def.Kind}
	switch def.Kind {
	case registry.AbilityAttack:
		dir := a.aim(target)
		a.Facing = dir
		spec := a.buildSpec(*def.Attack, a.powerFor(*def.Attack), dir, target, "ability:"+id)
		out.Attack = &spec
	case registry.AbilityBuff:
		effect := NewStatusEffect(*def.Effect, a.ID)
		a.AddStatus(effect)
		out.Effect = &effect
	case registry.AbilityHeal:
		out.Healed = a.Heal(def.Heal + def.HealScale*a.EffectiveMagic())
	}
	return out
}

// CanUseAbility проверяет все условия UseAbility, ничего не меняя.
func (a *Actor) CanUseAbility(index int) bool {
	_, _, ok := a.abilityReady(index)
	return ok
}

func (a *Actor) abilityReady(index int) (string, registry.AbilityDef, bool) {
	if index < 0 || index >= len(a.Abilities) {
		return "", registry.AbilityDef{}, false
	}
	id := a.Abilities[index]
	def, ok := a.reg.Ability(id)
	if !ok {
		return "", registry.AbilityDef{}, false
	}
	if !a.canStartAction() || !a.Cooldowns.Ready(id) {
		return "", registry.AbilityDef{}, false
	}
	if def.RequiresSkill != "" && !a.Skills[def.RequiresSkill] {
		return "", registry.AbilityDef{}, false
	}
	if !a.Mana.Has(def.ManaCost) || !a.Stamina.Has(def.StaminaCost) {
		return "", registry.AbilityDef{}, false
	}
	return id, def, true
}
