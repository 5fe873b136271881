package engine

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
)

// FrameReport — всё, что произошло за один Step. Инстанс его не хранит.
type FrameReport struct {
	Frame    int                    `json:"frame"`
	Time     float64                `json:"time"`
	DT       float64                `json:"dt"`
	Results  []systems.CombatResult `json:"results"`
	Rejected []RejectedCommand      `json:"rejected,omitempty"`
	Deaths   []Death                `json:"deaths,omitempty"`
	LevelUps []LevelUp              `json:"levelUps,omitempty"`
	Spawned  []types.EntityID       `json:"spawned,omitempty"`
	Views    []ActorView            `json:"views"`
}

// Death — смерть актёра в этом кадре.
type Death struct {
	ActorID  types.EntityID `json:"actorId"`
	KillerID types.EntityID `json:"killerId"`
	ClassID  string         `json:"classId"`
}

// LevelUp — актёр получил уровни за убийство.
type LevelUp struct {
	ActorID types.EntityID `json:"actorId"`
	Gained  int            `json:"gained"`
	Level   int            `json:"level"`
}

// RejectedCommand — команда, отклонённая правилами или валидацией.
type RejectedCommand struct {
	ActorID types.EntityID `json:"actorId"`
	Action  string         `json:"action"`
	Reason  string         `json:"reason"`
}

// Damage суммирует нанесённый урон по цели за кадр (лечение не учитывается).
func (r FrameReport) Damage(target types.EntityID) float64 {
	total := 0.0
	for _, res := range r.Results {
		if res.TargetID == target && res.Kind != systems.ResultHeal {
			total += res.Amount
		}
	}
	return total
}

// View возвращает снимок актёра, если он есть в отчёте.
func (r FrameReport) View(id types.EntityID) (ActorView, bool) {
	for _, v := range r.Views {
		if v.ID == id {
			return v, true
		}
	}
	return ActorView{}, false
}
