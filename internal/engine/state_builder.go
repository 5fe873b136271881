package engine

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// ActorView — снимок актёра только для чтения (для слоя отображения).
type ActorView struct {
	ID      types.EntityID `json:"id"`
	ClassID string         `json:"classId"`
	Team    string         `json:"team"`
	Pos     domain.Vec2    `json:"pos"`
	Facing  domain.Vec2    `json:"facing"`

	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"maxHealth"`
	Mana       float64 `json:"mana"`
	MaxMana    float64 `json:"maxMana"`
	Stamina    float64 `json:"stamina"`
	MaxStamina float64 `json:"maxStamina"`

	Level      int     `json:"level"`
	Experience float64 `json:"experience"`
	ExpToNext  float64 `json:"expToNext"`

	State        string                `json:"state"`
	IsDead       bool                  `json:"isDead"`
	IsDashing    bool                  `json:"isDashing"`
	IsParrying   bool                  `json:"isParrying"`
	Invulnerable bool                  `json:"invulnerable"`
	ActiveSpell  string                `json:"activeSpell,omitempty"`
	Effects      []EffectView          `json:"effects,omitempty"`
	Cooldowns    []domain.CooldownView `json:"cooldowns,omitempty"`
}

type EffectView struct {
	Kind      enums.EffectKind `json:"kind"`
	Magnitude float64          `json:"magnitude"`
	Remaining float64          `json:"remaining"`
}

// BuildView создаёт снимок одного актёра.
func BuildView(a *domain.Actor) ActorView {
	v := ActorView{
		ID:      a.ID,
		ClassID: a.Class.ID,
		Team:    a.Team,
		Pos:     a.Center(),
		Facing:  a.Facing,

		Health:     a.Health.Current,
		MaxHealth:  a.Health.Max,
		Mana:       a.Mana.Current,
		MaxMana:    a.Mana.Max,
		Stamina:    a.Stamina.Current,
		MaxStamina: a.Stamina.Max,

		Level:      a.Level,
		Experience: a.Experience,
		ExpToNext:  a.ExpToNext,

		State:        a.Action.Current(),
		IsDead:       a.IsDead(),
		IsDashing:    a.Movement.IsDashing,
		IsParrying:   a.Movement.IsParrying,
		Invulnerable: a.IsInvulnerable(),
		ActiveSpell:  a.CurrentSpell(),
		Cooldowns:    a.Cooldowns.Snapshot(),
	}

	for _, e := range a.Status.Active() {
		v.Effects = append(v.Effects, EffectView{
			Kind:      e.Kind,
			Magnitude: e.Magnitude,
			Remaining: e.Duration,
		})
	}
	return v
}

// buildViews создаёт снимки всех актёров в порядке списка инстанса.
func (i *Instance) buildViews() []ActorView {
	views := make([]ActorView, 0, len(i.actors))
	for _, a := range i.actors {
		views = append(views, BuildView(a))
	}
	return views
}
