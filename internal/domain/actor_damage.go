package domain

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// DamageStage — этап damage pipeline, на котором решилась судьба удара.
type DamageStage uint8

const (
	StageRejected DamageStage = iota
	StageInvulnerable
	StageParried
	StageBlocked
	StageAbsorbed
	StageManaShield
	StageArmor
)

var damageStageToString = map[DamageStage]string{
	StageRejected:     "REJECTED",
	StageInvulnerable: "INVULNERABLE",
	StageParried:      "PARRIED",
	StageBlocked:      "BLOCKED",
	StageAbsorbed:     "ABSORBED",
	StageManaShield:   "MANA_SHIELD",
	StageArmor:        "ARMOR",
}

func (s DamageStage) String() string {
	if val, ok := damageStageToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// DamageOutcome — итог одного прохода pipeline.
type DamageOutcome struct {
	Applied float64
	Stage   DamageStage
	Killed  bool
}

// TakeDamage прогоняет урон через pipeline и возвращает фактически снятое здоровье.
func (a *Actor) TakeDamage(amount float64, source *Actor) float64 {
	return a.ApplyDamage(amount, source).Applied
}

// ApplyDamage — damage pipeline. Этапы строго по порядку, первый
// сработавший заканчивает обработку (кроме перелива поглощающего щита):
//
//  1. неуязвимость — ничего;
//  2. активное окно парирования — ничего, возврат выносливости,
//     неуязвимость защитнику и оглушение источнику;
//  3. блокирующий щит — ничего, минус один заряд;
//  4. поглощающий щит — вычет из запаса, остаток идёт дальше;
//  5. щит маны — урон оплачивается маной, недостаток идёт в броню;
//  6. броня — max(1, floor(урон - защита * armorFactor)).
func (a *Actor) ApplyDamage(amount float64, source *Actor) DamageOutcome {
	if a.IsDead() || !(amount > 0) || math.IsInf(amount, 0) {
		return DamageOutcome{Stage: StageRejected}
	}

	if a.IsInvulnerable() {
		return DamageOutcome{Stage: StageInvulnerable}
	}

	if a.Movement.IsParrying && a.Movement.ParryWindow > 0 {
		a.parrySucceeded(source)
		return DamageOutcome{Stage: StageParried}
	}

	if shield, ok := a.Status.Get(enums.EffectBlockShield); ok && shield.Magnitude >= 1 {
		shield.Magnitude--
		if shield.Magnitude <= 0 {
			a.Status.Remove(enums.EffectBlockShield)
		}
		return DamageOutcome{Stage: StageBlocked}
	}

	if shield, ok := a.Status.Get(enums.EffectAbsorbShield); ok {
		if amount <= shield.Magnitude {
			shield.Magnitude -= amount
			if shield.Magnitude <= 0 {
				a.Status.Remove(enums.EffectAbsorbShield)
			}
			return DamageOutcome{Stage: StageAbsorbed}
		}
		amount -= shield.Magnitude
		a.Status.Remove(enums.EffectAbsorbShield)
	}

	stage := StageArmor
	if shield, ok := a.Status.Get(enums.EffectManaShield); ok {
		ratio := shield.Magnitude
		if ratio <= 0 {
			ratio = 1
		}
		cost := amount * ratio
		if a.Mana.Spend(cost) {
			return DamageOutcome{Stage: StageManaShield}
		}
		absorbed := a.Mana.Current / ratio
		a.Mana.Current = 0
		amount -= absorbed
		stage = StageManaShield
	}

	final := math.Max(1, math.Floor(amount-a.EffectiveDefense()*a.rules.ArmorFactor))
	applied := a.Health.Drain(final)

	var sourceID types.EntityID
	if source != nil {
		sourceID = source.ID
	}
	if a.Health.Current <= 0 {
		a.die(sourceID)
		return DamageOutcome{Applied: applied, Stage: stage, Killed: true}
	}

	a.Movement.Invulnerable = math.Max(a.Movement.Invulnerable, a.rules.HitInvulnerability)
	return DamageOutcome{Applied: applied, Stage: stage}
}

func (a *Actor) parrySucceeded(source *Actor) {
	pr := a.rules.Parry
	a.Stamina.Restore(pr.StaminaCost)
	a.Movement.Invulnerable = math.Max(a.Movement.Invulnerable, pr.Invulnerability)
	a.Movement.IsParrying = false
	a.Movement.ParryWindow = 0

	if source != nil && source != a && !source.IsDead() {
		source.AddStatus(NewStatusEffect(registry.EffectDef{
			Kind:     enums.EffectStun,
			Duration: pr.Stagger,
		}, a.ID))
	}
}

// ApplyDirect снимает здоровье в обход pipeline (тики DoT). Мёртвых не трогает.
func (a *Actor) ApplyDirect(amount float64, sourceID types.EntityID) DamageOutcome {
	if a.IsDead() || !(amount > 0) || math.IsInf(amount, 0) {
		return DamageOutcome{Stage: StageRejected}
	}
	applied := a.Health.Drain(math.Floor(amount))
	if a.Health.Current <= 0 {
		a.die(sourceID)
		return DamageOutcome{Applied: applied, Stage: StageArmor, Killed: true}
	}
	return DamageOutcome{Applied: applied, Stage: StageArmor}
}

// Heal лечит актёра и возвращает фактически восстановленное.
func (a *Actor) Heal(amount float64) float64 {
	if a.IsDead() {
		return 0 // Не лечим трупы
	}
	return a.Health.Restore(amount)
}

// AddStatus накладывает эффект. На мёртвых ничего не действует.
func (a *Actor) AddStatus(e StatusEffect) bool {
	if a.IsDead() {
		return false
	}
	return a.Status.Add(e)
}

// AppliedTick — срабатывание DoT/HoT после применения к актёру.
type AppliedTick struct {
	StatusTick
	Applied float64
	Killed  bool
}

// TickStatus продвигает эффекты и применяет периодический урон и лечение.
// Возвращает срабатывания и виды эффектов, удалённых как повреждённые.
func (a *Actor) TickStatus(dt float64) ([]AppliedTick, []enums.EffectKind) {
	if a.IsDead() || !(dt > 0) {
		return nil, nil
	}
	ticks, dropped := a.Status.Tick(dt)
	if len(ticks) == 0 {
		return nil, dropped
	}

	out := make([]AppliedTick, 0, len(ticks))
	for _, tick := range ticks {
		if a.IsDead() {
			break
		}
		applied := AppliedTick{StatusTick: tick}
		if tick.Heal {
			applied.Applied = a.Heal(tick.Amount)
		} else {
			res := a.ApplyDirect(tick.Amount, tick.SourceID)
			applied.Applied = res.Applied
			applied.Killed = res.Killed
		}
		out = append(out, applied)
	}
	return out, dropped
}
