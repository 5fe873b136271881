package domain

import (
	"sort"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// Recalculate пересчитывает статы и производные характеристики с нуля
// из базовых статов, экипировки и пассивных навыков. Текущие значения
// ресурсов зажимаются новыми максимумами.
func (a *Actor) Recalculate() {
	bonuses := a.totalBonuses()
	a.Stats = a.Base.Add(bonuses.Stats)
	a.Derived = ComputeDerived(a.Stats, a.Level, bonuses)

	a.Health.SetMax(a.Derived.MaxHealth)
	a.Mana.SetMax(a.Derived.MaxMana)
	a.Stamina.SetMax(a.Derived.MaxStamina)
}

// totalBonuses суммирует бонусы в фиксированном порядке: слоты по
// возрастанию, затем навыки по имени. Порядок важен для
// воспроизводимости сумм с плавающей точкой.
func (a *Actor) totalBonuses() registry.Bonuses {
	var total registry.Bonuses
	for _, item := range a.Equipment {
		if item != nil {
			total = total.Add(item.Bonuses)
		}
	}
	for _, id := range a.LearnedSkills() {
		if sk, ok := a.reg.Skill(id); ok {
			total = total.Add(sk.Passive)
		}
	}
	return total
}

// LearnedSkills возвращает изученные навыки в отсортированном порядке.
func (a *Actor) LearnedSkills() []string {
	ids := make([]string, 0, len(a.Skills))
	for id, ok := range a.Skills {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Equip надевает предмет. Занятый слот сначала освобождается, снятый
// предмет возвращается. Аксессуар занимает первый свободный из двух слотов.
func (a *Actor) Equip(item registry.ItemDef) (*registry.ItemDef, bool) {
	if a.IsDead() || item.Slot == enums.SlotUnknown || item.Slot >= enums.EquipSlotCount {
		return nil, false
	}

	slot := item.Slot
	if slot.IsAccessory() {
		switch {
		case a.Equipment[enums.SlotAccessory1] == nil:
			slot = enums.SlotAccessory1
		case a.Equipment[enums.SlotAccessory2] == nil:
			slot = enums.SlotAccessory2
		default:
			slot = enums.SlotAccessory1
		}
	}

	prev := a.Equipment[slot]
	equipped := item
	a.Equipment[slot] = &equipped
	a.Recalculate()
	return prev, true
}

// Unequip снимает предмет из слота. Бонусы убираются симметрично.
func (a *Actor) Unequip(slot enums.EquipSlot) (*registry.ItemDef, bool) {
	if a.IsDead() || slot == enums.SlotUnknown || slot >= enums.EquipSlotCount {
		return nil, false
	}
	prev := a.Equipment[slot]
	if prev == nil {
		return nil, false
	}
	a.Equipment[slot] = nil
	a.Recalculate()
	return prev, true
}

// AddExperience начисляет опыт и возвращает число полученных уровней.
// Каждый уровень даёт очки статов и навыков и полностью восстанавливает ресурсы.
func (a *Actor) AddExperience(xp float64) int {
	if a.IsDead() || !(xp > 0) {
		return 0
	}
	lv := a.rules.Leveling
	a.Experience += xp

	gained := 0
	for a.Experience >= a.ExpToNext {
		a.Experience -= a.ExpToNext
		a.Level++
		a.StatPoints += lv.StatPointsPerLevel
		a.SkillPoints += lv.SkillPointsPerLvl
		a.ExpToNext = lv.Threshold(a.Level)
		gained++
	}

	if gained > 0 {
		a.Recalculate()
		a.Health.Fill()
		a.Mana.Fill()
		a.Stamina.Fill()
	}
	return gained
}

// AllocateStat вкладывает одно очко в характеристику.
func (a *Actor) AllocateStat(stat enums.Stat) bool {
	if a.IsDead() || a.StatPoints <= 0 || stat == enums.StatUnknown {
		return false
	}
	a.StatPoints--
	a.Base = a.Base.With(stat, 1)
	a.Recalculate()
	return true
}

// LearnSkill изучает навык, если хватает очков и изучены все требования.
func (a *Actor) LearnSkill(id string) bool {
	if a.IsDead() || a.Skills[id] {
		return false
	}
	sk, ok := a.reg.Skill(id)
	if !ok || a.SkillPoints < sk.Cost {
		return false
	}
	for _, req := range sk.Requires {
		if !a.Skills[req] {
			return false
		}
	}

	a.SkillPoints -= sk.Cost
	a.Skills[id] = true
	if sk.GrantsAbility != "" && !contains(a.Abilities, sk.GrantsAbility) {
		a.Abilities = append(a.Abilities, sk.GrantsAbility)
	}
	if sk.GrantsSpell != "" && !contains(a.Spells, sk.GrantsSpell) {
		a.Spells = append(a.Spells, sk.GrantsSpell)
	}
	a.Recalculate()
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
