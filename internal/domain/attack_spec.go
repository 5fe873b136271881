package domain

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// AttackSpec — описание атаки, которое актёр отдаёт движку боя.
// Актёр не создаёт инстансы сам: резолвер строит их из AttackSpec.
type AttackSpec struct {
	Kind    enums.AttackKind
	OwnerID types.EntityID
	Team    string
	// Origin — точка появления: центр снаряда, кольца или зоны.
	Origin Vec2
	// Offset — смещение хитбокса ближнего боя от центра владельца.
	Offset Vec2
	Dir    Vec2
	// Power — сила атакующего на момент атаки, из неё считается урон OnExpire.
	Power        float64
	Damage       float64
	IsCrit       bool
	Element      enums.Element
	HomingTarget types.EntityID
	Def          registry.AttackDef
	// Source — откуда атака (для логов): "weapon:rusty_sword", "ability:whirlwind".
	Source string
}

// ExpireSpec строит атаку, которая появляется на месте истёкшей.
func (s AttackSpec) ExpireSpec(at Vec2) (AttackSpec, bool) {
	if s.Def.OnExpire == nil {
		return AttackSpec{}, false
	}
	def := *s.Def.OnExpire
	el := def.Element
	if el == enums.ElementNone {
		el = s.Element
	}
	return AttackSpec{
		Kind:    def.Kind,
		OwnerID: s.OwnerID,
		Team:    s.Team,
		Origin:  at,
		Dir:     s.Dir,
		Power:   s.Power,
		Damage:  ScaleDamage(s.Power, def),
		Element: el,
		Def:     def,
		Source:  s.Source + ":expire",
	}, true
}

// ScaleDamage — урон атаки от силы атакующего, целые значения, минимум 1.
func ScaleDamage(power float64, def registry.AttackDef) float64 {
	dmg := power*def.DamageScale() + def.Damage
	if dmg < 1 || !isFinite(dmg) {
		return 1
	}
	return float64(int64(dmg))
}

// AbilityOutcome — результат успешного применения способности.
// Заполнено ровно одно из Attack, Effect, Healed.
type AbilityOutcome struct {
	AbilityID string
	Kind      registry.AbilityKind
	Attack    *AttackSpec
	Effect    *StatusEffect
	Healed    float64
}
