package domain

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// Pool — ресурс с текущим и максимальным значением (здоровье, мана, выносливость).
// Инвариант: 0 <= Current <= Max.
type Pool struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

// Has проверяет, хватает ли ресурса.
func (p *Pool) Has(cost float64) bool {
	return p.Current >= cost
}

// Spend тратит ресурс. Возвращает false и ничего не меняет, если не хватило.
func (p *Pool) Spend(cost float64) bool {
	if cost < 0 || p.Current < cost {
		return false
	}
	p.Current -= cost
	return true
}

// Restore восстанавливает ресурс не выше максимума.
func (p *Pool) Restore(amount float64) float64 {
	if amount <= 0 || math.IsNaN(amount) {
		return 0
	}
	before := p.Current
	p.Current = math.Min(p.Max, p.Current+amount)
	return p.Current - before
}

// Drain снимает ресурс не ниже нуля. Возвращает фактически снятое.
func (p *Pool) Drain(amount float64) float64 {
	if amount <= 0 || math.IsNaN(amount) {
		return 0
	}
	before := p.Current
	p.Current = math.Max(0, p.Current-amount)
	return before - p.Current
}

// SetMax меняет максимум и зажимает текущее значение.
func (p *Pool) SetMax(m float64) {
	p.Max = math.Max(0, m)
	if p.Current > p.Max {
		p.Current = p.Max
	}
	if p.Current < 0 || math.IsNaN(p.Current) {
		p.Current = 0
	}
}

// Fill заполняет ресурс до максимума.
func (p *Pool) Fill() {
	p.Current = p.Max
}

// DerivedStats — характеристики, вычисленные из статов, уровня и бонусов.
type DerivedStats struct {
	MaxHealth      float64 `json:"maxHealth"`
	MaxMana        float64 `json:"maxMana"`
	MaxStamina     float64 `json:"maxStamina"`
	AttackDamage   float64 `json:"attackDamage"`
	MagicDamage    float64 `json:"magicDamage"`
	Defense        float64 `json:"defense"`
	CritChance     float64 `json:"critChance"`
	CritMultiplier float64 `json:"critMultiplier"`
	Speed          float64 `json:"speed"`
	ManaRegen      float64 `json:"manaRegen"`
	StaminaRegen   float64 `json:"staminaRegen"`
}

// ComputeDerived считает производные характеристики с нуля.
// Итог зависит только от аргументов, поэтому снять и надеть предмет — то же самое,
// что не трогать его вовсе.
func ComputeDerived(s registry.StatBlock, level int, b registry.Bonuses) DerivedStats {
	lv := float64(level - 1)
	if lv < 0 {
		lv = 0
	}

	crit := BaseCritChance + s.Luck*CritPerLuck + b.CritChance
	crit = math.Max(0, math.Min(MaxCritChance, crit))

	return DerivedStats{
		MaxHealth:      BaseHealth + s.Vitality*HealthPerVitality + lv*HealthPerLevel + b.MaxHealth,
		MaxMana:        BaseMana + s.Intelligence*ManaPerIntelligence + lv*ManaPerLevel + b.MaxMana,
		MaxStamina:     BaseStamina + s.Agility*StaminaPerAgility + s.Vitality*StaminaPerVitality + b.MaxStamina,
		AttackDamage:   BaseAttack + s.Strength*AttackPerStrength + b.Attack,
		MagicDamage:    BaseMagic + s.Intelligence*MagicPerIntellect + b.Magic,
		Defense:        math.Max(0, s.Vitality*DefensePerVitality+s.Strength*DefensePerStrength+b.Defense),
		CritChance:     crit,
		CritMultiplier: BaseCritMult + b.CritMultiplier,
		Speed:          math.Max(0, BaseSpeed+s.Agility*SpeedPerAgility+b.Speed),
		ManaRegen:      BaseManaRegen + s.Intelligence*ManaRegenPerInt,
		StaminaRegen:   BaseStaminaRegen + s.Agility*StaminaRegenPerAgi,
	}
}
