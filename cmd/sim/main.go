package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"reflect"
	"strings"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/version"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/dungeon"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

type options struct {
	seed       int64
	frames     int
	dt         float64
	configPath string
	party      string
	enemies    string
	rooms      int
	replay     bool
}

func main() {
	// 1. Парсинг флагов
	var opts options
	flag.Int64Var(&opts.seed, "seed", 0, "Arena and combat seed (0 for random or CD_SEED)")
	flag.IntVar(&opts.frames, "frames", 1800, "Maximum number of frames to simulate")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "Frame delta in seconds")
	flag.StringVar(&opts.configPath, "config", "", "Path to a registry YAML file (embedded defaults if empty)")
	flag.StringVar(&opts.party, "party", "warrior,ranger,mage", "Comma separated player classes")
	flag.StringVar(&opts.enemies, "enemies", "goblin:4,orc:1,skeleton_archer:2,plague_shaman:1", "Enemy roster class:count,...")
	flag.IntVar(&opts.rooms, "rooms", dungeon.MaxRooms, "Maximum number of rooms")
	flag.BoolVar(&opts.replay, "verify-replay", false, "Play the recorded run back on a fresh instance and compare")
	flag.Parse()

	logger.Log.Info("Starting combat simulator...")
	logger.Log.Info(version.String())

	if err := run(opts); err != nil {
		logger.Log.WithError(err).Error("Simulation failed")
		os.Exit(1)
	}
}

func run(opts options) error {
	// 2. Конфигурация и реестр
	cfg, err := engine.ConfigFromEnv()
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	reg, err := loadRegistry(opts.configPath)
	if err != nil {
		return err
	}

	logger.Log.WithField("seed", cfg.Seed).Info("Using seed")

	// 3. Арена и инстанс
	roster, err := parseRoster(opts.enemies)
	if err != nil {
		return err
	}
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = reg.Rules().TileSize
	}
	arena := buildArena(cfg.Seed, tileSize, opts.rooms, roster)
	party := splitList(opts.party)

	cfg.RecordReplay = opts.replay
	inst, players, err := engine.NewArenaInstance(cfg, reg, arena, party, true)
	if err != nil {
		return err
	}

	// 4. Симуляция
	var stats summary
	var last engine.FrameReport
	for f := 0; f < opts.frames; f++ {
		last = inst.Step(opts.dt, autopilot(inst, players))
		stats.add(last)
		if finished(inst, players) {
			break
		}
	}
	stats.log(inst, players)

	// 5. Проверка детерминизма
	if opts.replay {
		fresh, _, err := engine.NewArenaInstance(cfg, reg, arena, party, true)
		if err != nil {
			return err
		}
		reports := fresh.Playback(inst.Replay)
		if len(reports) != len(inst.Replay.Frames) ||
			(len(reports) > 0 && !reflect.DeepEqual(reports[len(reports)-1], last)) {
			return fmt.Errorf("replay diverged after %d frames", len(reports))
		}
		logger.Log.WithFields(logrus.Fields{
			"frames":   len(inst.Replay.Frames),
			"commands": inst.Replay.CommandCount(),
		}).Info("Replay verified")
	}
	return nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default()
	}
	return registry.Load(path)
}

func buildArena(seed int64, tileSize float64, rooms int, roster []rosterEntry) *dungeon.Arena {
	b := dungeon.NewLevel(rand.New(rand.NewSource(seed))).
		WithTileSize(tileSize).
		WithRooms(rooms)
	for _, e := range roster {
		b.SpawnEnemy(e.classID, e.count)
	}
	return b.
		ScatterFeature(enums.TileWater, 4).
		ScatterFeature(enums.TileTrap, 2).
		PlaceExit("up").
		PlaceExit("down").
		Build()
}

// autopilot ведёт отряд тем же ИИ, что и врагов, но через команды хоста,
// поэтому ходы отряда попадают в реплей.
func autopilot(inst *engine.Instance, players []*domain.Actor) []domain.Command {
	var cmds []domain.Command
	for _, p := range players {
		if p.IsDead() {
			continue
		}
		cmd := systems.ComputeNPCIntent(p, inst.Actors(), inst.Grid, inst.TileSize())
		if cmd.Action != domain.ActionWait {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func finished(inst *engine.Instance, players []*domain.Actor) bool {
	if inst.Hostiles(engine.TeamPlayers) == 0 {
		return true
	}
	for _, p := range players {
		if !p.IsDead() {
			return false
		}
	}
	return true
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
