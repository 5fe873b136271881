package engine

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
)

// processAI исполняет намерения всех актёров, которыми не управляет хост.
// Намерения идут через ту же таблицу хендлеров, что и команды игроков.
func (i *Instance) processAI(report *FrameReport) {
	for _, a := range i.actors {
		if i.controlled[a.ID] || a.IsDead() {
			continue
		}
		cmd := systems.ComputeNPCIntent(a, i.actors, i.Grid, i.tileSize)
		if cmd.Action == domain.ActionWait {
			continue
		}
		i.execute(cmd, report)
	}
}
