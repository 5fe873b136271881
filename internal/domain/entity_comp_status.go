package domain

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// StatusEffect — временный эффект на актёре.
//
// Для щитов Magnitude хранит состояние щита: число блоков (BlockShield),
// остаток поглощения (AbsorbShield) или стоимость маны за единицу урона (ManaShield).
type StatusEffect struct {
	Kind         enums.EffectKind `json:"kind"`
	Magnitude    float64          `json:"magnitude"`
	Duration     float64          `json:"duration"`
	TickInterval float64          `json:"tickInterval,omitempty"`
	TickAmount   float64          `json:"tickAmount,omitempty"`
	// SourceID — слабая ссылка на наложившего, может указывать на мёртвого.
	SourceID types.EntityID `json:"sourceId"`

	tickTimer float64
}

// NewStatusEffect собирает эффект из определения в реестре.
func NewStatusEffect(def registry.EffectDef, source types.EntityID) StatusEffect {
	return StatusEffect{
		Kind:         def.Kind,
		Magnitude:    def.Magnitude,
		Duration:     def.Duration,
		TickInterval: def.TickInterval,
		TickAmount:   def.TickAmount,
		SourceID:     source,
	}
}

func (e *StatusEffect) valid() bool {
	return isFinite(e.Magnitude) && isFinite(e.Duration) && isFinite(e.TickInterval) &&
		isFinite(e.TickAmount) && isFinite(e.tickTimer)
}

// StatusTick — срабатывание периодического эффекта.
type StatusTick struct {
	Kind     enums.EffectKind
	Amount   float64
	SourceID types.EntityID
	Heal     bool
}

// StatusTable — таблица эффектов, индексированная видом эффекта.
// Один вид — не больше одного экземпляра; порядок обхода фиксирован.
type StatusTable struct {
	slots  [enums.EffectKindCount]StatusEffect
	active [enums.EffectKindCount]bool
}

// Add накладывает эффект. Повторное наложение того же вида берёт большую
// из двух длительностей и заменяет силу, таймер тиков сохраняется.
// Щит блока без зарядов не накладывается.
func (t *StatusTable) Add(e StatusEffect) bool {
	if e.Kind == enums.EffectUnknown || e.Kind >= enums.EffectKindCount {
		return false
	}
	if !e.valid() || e.Duration <= 0 {
		return false
	}
	if e.Kind == enums.EffectBlockShield && e.Magnitude < 1 {
		return false
	}
	if t.active[e.Kind] {
		prev := t.slots[e.Kind]
		e.Duration = math.Max(prev.Duration, e.Duration)
		e.tickTimer = prev.tickTimer
	}
	t.slots[e.Kind] = e
	t.active[e.Kind] = true
	return true
}

// Get возвращает указатель на активный эффект, чтобы damage pipeline мог
// менять состояние щита.
func (t *StatusTable) Get(kind enums.EffectKind) (*StatusEffect, bool) {
	if kind >= enums.EffectKindCount || !t.active[kind] {
		return nil, false
	}
	return &t.slots[kind], true
}

func (t *StatusTable) Has(kind enums.EffectKind) bool {
	return kind < enums.EffectKindCount && t.active[kind]
}

// Magnitude возвращает силу эффекта или 0, если его нет.
func (t *StatusTable) Magnitude(kind enums.EffectKind) float64 {
	if e, ok := t.Get(kind); ok {
		return e.Magnitude
	}
	return 0
}

func (t *StatusTable) Remove(kind enums.EffectKind) {
	if kind >= enums.EffectKindCount {
		return
	}
	t.active[kind] = false
	t.slots[kind] = StatusEffect{}
}

func (t *StatusTable) Clear() {
	*t = StatusTable{}
}

// Active возвращает копии активных эффектов в порядке вида.
func (t *StatusTable) Active() []StatusEffect {
	out := make([]StatusEffect, 0, 4)
	for k := range t.slots {
		if t.active[k] {
			out = append(out, t.slots[k])
		}
	}
	return out
}

// Tick продвигает эффекты на dt и возвращает срабатывания периодических эффектов.
// Истёкшие эффекты удаляются, повреждённые (NaN) удаляются и перечисляются в dropped.
func (t *StatusTable) Tick(dt float64) (ticks []StatusTick, dropped []enums.EffectKind) {
	for k := range t.slots {
		if !t.active[k] {
			continue
		}
		e := &t.slots[k]
		if !e.valid() {
			dropped = append(dropped, e.Kind)
			t.Remove(enums.EffectKind(k))
			continue
		}

		// Тики считаются только внутри оставшейся длительности.
		step := dt
		if step > e.Duration {
			step = e.Duration
		}
		if e.TickInterval > 0 {
			e.tickTimer += step
			for e.tickTimer >= e.TickInterval {
				e.tickTimer -= e.TickInterval
				ticks = append(ticks, StatusTick{
					Kind:     e.Kind,
					Amount:   e.TickAmount,
					SourceID: e.SourceID,
					Heal:     e.Kind == enums.EffectRegen,
				})
			}
		}

		e.Duration -= dt
		if e.Duration <= 0 {
			t.Remove(enums.EffectKind(k))
		}
	}
	return ticks, dropped
}
