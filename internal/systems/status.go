package systems

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// TickStatusEffects продвигает статус-эффекты всех актёров и превращает
// срабатывания DoT/HoT в результаты кадра. Повреждённые эффекты удаляются
// с предупреждением.
func TickStatusEffects(actors []*domain.Actor, dt float64) []CombatResult {
	var results []CombatResult
	for _, a := range actors {
		ticks, dropped := a.TickStatus(dt)
		if len(dropped) > 0 {
			logger.For("status_system").WithFields(logrus.Fields{
				"actor_id": a.ID,
				"dropped":  dropped,
			}).Warn("Corrupted status effects removed.")
		}
		for _, t := range ticks {
			kind := ResultTick
			if t.Heal {
				kind = ResultHeal
			}
			results = append(results, CombatResult{
				TargetID: a.ID,
				SourceID: t.SourceID,
				Amount:   t.Applied,
				Kind:     kind,
				Killed:   t.Killed,
			})
		}
	}
	return results
}
