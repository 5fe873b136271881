package domain

import "sort"

// Cooldowns — таймеры перезарядки способностей по идентификатору.
type Cooldowns struct {
	remaining map[string]float64
}

func NewCooldowns() Cooldowns {
	return Cooldowns{remaining: make(map[string]float64)}
}

// Start запускает перезарядку. Неположительная длительность ничего не делает.
func (c *Cooldowns) Start(id string, duration float64) {
	if duration <= 0 {
		return
	}
	if c.remaining == nil {
		c.remaining = make(map[string]float64)
	}
	c.remaining[id] = duration
}

// Remaining возвращает оставшееся время, 0 — готово.
func (c *Cooldowns) Remaining(id string) float64 {
	return c.remaining[id]
}

func (c *Cooldowns) Ready(id string) bool {
	return c.remaining[id] <= 0
}

// Tick уменьшает все таймеры, закончившиеся удаляются.
func (c *Cooldowns) Tick(dt float64) {
	for id, left := range c.remaining {
		left -= dt
		if left <= 0 {
			delete(c.remaining, id)
			continue
		}
		c.remaining[id] = left
	}
}

// Snapshot возвращает активные перезарядки в отсортированном порядке (для UI).
func (c *Cooldowns) Snapshot() []CooldownView {
	out := make([]CooldownView, 0, len(c.remaining))
	for id, left := range c.remaining {
		out = append(out, CooldownView{ID: id, Remaining: left})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type CooldownView struct {
	ID        string  `json:"id"`
	Remaining float64 `json:"remaining"`
}
