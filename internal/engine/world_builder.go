package engine

import (
	"fmt"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/dungeon"
)

// Команды по умолчанию для арен.
const (
	TeamPlayers  = "players"
	TeamMonsters = "monsters"
)

// NewArenaInstance создаёт инстанс на готовой арене: отряд party появляется
// в стартовой точке, враги в точках появления арены.
// controlled задаёт, управляет ли отрядом хост (иначе отряд ведёт ИИ).
func NewArenaInstance(cfg Config, reg *registry.Registry, arena *dungeon.Arena, party []string, controlled bool) (*Instance, []*domain.Actor, error) {
	if cfg.TileSize <= 0 {
		cfg.TileSize = arena.TileSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	inst := NewInstance(cfg, reg, arena.Grid)

	// 1. Отряд
	players := make([]*domain.Actor, 0, len(party))
	for _, classID := range party {
		a, err := inst.SpawnActor(classID, arena.Start, TeamPlayers, controlled)
		if err != nil {
			return nil, nil, fmt.Errorf("party: %w", err)
		}
		players = append(players, a)
	}

	// 2. Враги
	for _, sp := range arena.Spawns {
		if _, err := inst.SpawnActor(sp.ClassID, sp.Pos, TeamMonsters, false); err != nil {
			return nil, nil, fmt.Errorf("arena spawn: %w", err)
		}
	}

	return inst, players, nil
}
