package domain

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// Формулы производных характеристик.
// Уровень добавляет здоровье и ману, остальное зависит только от статов.
const (
	BaseHealth        = 50.0
	HealthPerVitality = 10.0
	HealthPerLevel    = 10.0

	BaseMana            = 20.0
	ManaPerIntelligence = 8.0
	ManaPerLevel        = 5.0

	BaseStamina        = 60.0
	StaminaPerAgility  = 4.0
	StaminaPerVitality = 2.0

	BaseAttack         = 4.0
	AttackPerStrength  = 2.0
	BaseMagic          = 4.0
	MagicPerIntellect  = 2.0
	DefensePerVitality = 1.0
	DefensePerStrength = 0.5

	BaseCritChance  = 0.05
	CritPerLuck     = 0.01
	MaxCritChance   = 0.75
	BaseCritMult    = 1.5
	BaseSpeed       = 120.0
	SpeedPerAgility = 3.0

	BaseManaRegen        = 1.0
	ManaRegenPerInt      = 0.25
	BaseStaminaRegen     = 10.0
	StaminaRegenPerAgi   = 0.5
	MinEffectiveSpeedMul = 0.1
)

// Параметры восприятия NPC по умолчанию
const (
	DefaultAggroRadius = 200.0
	DefaultAttackRange = 32.0
)

// fallbackMelee — атака, если у класса нет ни оружия, ни атаки по умолчанию.
var fallbackMelee = registry.AttackDef{
	Kind:     enums.AttackMelee,
	Reach:    24,
	Width:    24,
	Lifetime: 0.12,
}

// ElementEffect возвращает статус, который вешает стихия при попадании.
func ElementEffect(el enums.Element) (registry.EffectDef, bool) {
	switch el {
	case enums.ElementFire:
		return registry.EffectDef{Kind: enums.EffectBurn, Duration: 3, TickInterval: 0.5, TickAmount: 2}, true
	case enums.ElementIce:
		return registry.EffectDef{Kind: enums.EffectSlow, Magnitude: 0.3, Duration: 2}, true
	case enums.ElementPoison:
		return registry.EffectDef{Kind: enums.EffectPoison, Duration: 4, TickInterval: 1, TickAmount: 3}, true
	case enums.ElementLightning:
		return registry.EffectDef{Kind: enums.EffectStun, Duration: 0.15}, true
	}
	return registry.EffectDef{}, false
}
