package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers/actions"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Instance — один изолированный бой на одной арене.
//
// Инстанс не владеет циклом: хост вызывает Step раз в кадр и сам решает,
// что делать с отчётом. Всё исполняется в одном потоке.
type Instance struct {
	Config   Config
	Registry *registry.Registry
	Grid     domain.TileGrid
	Resolver *systems.Resolver

	actors     []*domain.Actor
	byID       map[types.EntityID]*domain.Actor
	controlled map[types.EntityID]bool
	teams      map[string]uint8

	handlers map[domain.ActionType]handlers.HandlerFunc
	alloc    *types.Allocator

	Rng    *rand.Rand            // Локальный генератор
	Replay *domain.ReplaySession // Лента команд, nil если запись выключена

	frame    int
	time     float64
	maxDT    float64
	tileSize float64

	log *logrus.Entry
}

func NewInstance(cfg Config, reg *registry.Registry, grid domain.TileGrid) *Instance {
	rules := reg.Rules()
	i := &Instance{
		Config:     cfg,
		Registry:   reg,
		Grid:       grid,
		Resolver:   systems.NewResolver(cfg.Generation),
		byID:       make(map[types.EntityID]*domain.Actor),
		controlled: make(map[types.EntityID]bool),
		teams:      make(map[string]uint8),
		handlers:   actions.Table(),
		alloc:      types.NewAllocator(cfg.Generation),
		Rng:        rand.New(rand.NewSource(cfg.Seed)),
		maxDT:      cfg.MaxFrameDT,
		tileSize:   cfg.TileSize,
		log:        logger.For("instance").WithField("seed", cfg.Seed),
	}
	if i.maxDT <= 0 {
		i.maxDT = rules.MaxFrameDT
	}
	if i.tileSize <= 0 {
		i.tileSize = rules.TileSize
	}
	if cfg.RecordReplay {
		i.Replay = &domain.ReplaySession{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
			Frames:    make([]domain.ReplayFrame, 0),
		}
	}

	i.log.WithFields(logrus.Fields{
		"max_dt":    i.maxDT,
		"tile_size": i.tileSize,
	}).Info("Instance created")
	return i
}

// SpawnActor создаёт актёра класса classID и надевает стартовые предметы.
// controlled == false отдаёт актёра под управление ИИ.
func (i *Instance) SpawnActor(classID string, pos domain.Vec2, team string, controlled bool) (*domain.Actor, error) {
	class, ok := i.Registry.Class(classID)
	if !ok {
		return nil, fmt.Errorf("spawn %q: %w", classID, registry.ErrUnknownClass)
	}
	if !pos.IsFinite() {
		return nil, fmt.Errorf("spawn %q: position is not finite", classID)
	}

	id := i.alloc.Next(uint8(class.Kind), i.teamIndex(team))
	rng := rand.New(rand.NewSource(i.Rng.Int63()))
	actor := domain.NewActor(id, class, team, pos, i.Registry, rng)

	for _, itemID := range class.StartingItems {
		item, ok := i.Registry.Item(itemID)
		if !ok {
			return nil, fmt.Errorf("spawn %q: starting item %q: %w", classID, itemID, registry.ErrUnknownItem)
		}
		actor.Equip(item)
	}
	actor.Health.Fill()
	actor.Mana.Fill()
	actor.Stamina.Fill()

	i.actors = append(i.actors, actor)
	i.byID[id] = actor
	if controlled {
		i.controlled[id] = true
	}

	i.log.WithFields(logrus.Fields{
		"actor_id":   id,
		"class":      classID,
		"team":       team,
		"controlled": controlled,
	}).Debug("Actor spawned")
	return actor, nil
}

func (i *Instance) teamIndex(team string) uint8 {
	idx, ok := i.teams[team]
	if !ok {
		idx = uint8(len(i.teams))
		i.teams[team] = idx
	}
	return idx
}

// Step продвигает бой на один кадр.
//
// Порядок внутри кадра фиксирован: команды и намерения ИИ, таймеры актёров,
// стены, тик боя, статус-эффекты, смерти и опыт.
func (i *Instance) Step(dt float64, cmds []domain.Command) FrameReport {
	dt = i.clampDT(dt)
	i.frame++
	i.time += dt
	i.record(dt, cmds)

	report := FrameReport{Frame: i.frame, Time: i.time, DT: dt}

	// 1. Ввод: разгон задаётся заново каждый кадр
	for _, a := range i.actors {
		a.Body.Acc = domain.Vec2{}
	}
	for _, cmd := range cmds {
		i.execute(cmd, &report)
	}
	i.processAI(&report)

	// 2. Таймеры, перезарядки, регенерация
	for _, a := range i.actors {
		a.Update(dt)
	}

	// 3. Движение и стены
	for _, a := range i.actors {
		systems.ResolveActorMovement(a, i.Grid, i.tileSize, dt)
	}

	// 4. Бой
	report.Results = append(report.Results, i.Resolver.Tick(dt, i.actors, i.Grid, i.tileSize)...)

	// 5. Статус-эффекты
	report.Results = append(report.Results, systems.TickStatusEffects(i.actors, dt)...)

	// 6. Смерти и опыт
	i.collectDeaths(&report)
	report.Spawned = i.Resolver.TakeSpawned()
	report.Views = i.buildViews()
	i.pruneDead()

	return report
}

// clampDT зажимает dt сверху. Нечисловой или отрицательный dt даёт пустой кадр.
func (i *Instance) clampDT(dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 1) {
		if dt != 0 {
			i.log.WithField("dt", dt).Warn("Frame dt is not valid, using 0")
		}
		return 0
	}
	return min(dt, i.maxDT)
}

// execute исполняет одну команду через таблицу хендлеров.
func (i *Instance) execute(cmd domain.Command, report *FrameReport) {
	cmdLogger := i.log.WithFields(logrus.Fields{
		"actor_id": cmd.Actor,
		"action":   cmd.Action,
	})

	handler, ok := i.handlers[cmd.Action]
	if !ok {
		cmdLogger.Warn("Unknown action")
		report.reject(cmd, "unknown action")
		return
	}

	ctx := handlers.Context{
		Actor:    i.byID[cmd.Actor],
		Registry: i.Registry,
		Spawn:    i.Resolver.Spawn,
		Report: func(res systems.CombatResult) {
			report.Results = append(report.Results, res)
		},
	}

	res, err := handler(ctx, cmd)
	if err != nil {
		cmdLogger.WithError(err).Warn("Command dropped")
		report.reject(cmd, err.Error())
		return
	}
	if !res.Accepted {
		cmdLogger.WithField("reason", res.Msg).Debug("Command rejected")
		report.reject(cmd, res.Msg)
	}
}

func (r *FrameReport) reject(cmd domain.Command, reason string) {
	r.Rejected = append(r.Rejected, RejectedCommand{
		ActorID: cmd.Actor,
		Action:  cmd.Action.String(),
		Reason:  reason,
	})
}

// collectDeaths забирает смерти этого кадра и начисляет опыт убийце.
func (i *Instance) collectDeaths(report *FrameReport) {
	for _, a := range i.actors {
		killerID, died := a.ConsumeDeath()
		if !died {
			continue
		}
		report.Deaths = append(report.Deaths, Death{ActorID: a.ID, KillerID: killerID, ClassID: a.Class.ID})

		deathLogger := i.log.WithFields(logrus.Fields{
			"actor_id":  a.ID,
			"killer_id": killerID,
		})
		deathLogger.Debug("Actor died")

		killer := i.byID[killerID]
		if killer == nil || killer.IsDead() || a.Class.XPReward <= 0 {
			continue
		}
		if gained := killer.AddExperience(a.Class.XPReward); gained > 0 {
			report.LevelUps = append(report.LevelUps, LevelUp{ActorID: killer.ID, Gained: gained, Level: killer.Level})
			deathLogger.WithField("level", killer.Level).Debug("Killer leveled up")
		}
	}
}

// pruneDead убирает мёртвых актёров под управлением ИИ.
// Управляемые остаются в списке, чтобы хост видел их состояние.
func (i *Instance) pruneDead() {
	alive := i.actors[:0]
	for _, a := range i.actors {
		if a.IsDead() && !i.controlled[a.ID] {
			delete(i.byID, a.ID)
			continue
		}
		alive = append(alive, a)
	}
	for k := len(alive); k < len(i.actors); k++ {
		i.actors[k] = nil
	}
	i.actors = alive
}

// Actor возвращает актёра по идентификатору или nil.
func (i *Instance) Actor(id types.EntityID) *domain.Actor {
	return i.byID[id]
}

// Actors возвращает актёров в порядке появления. Срез нельзя изменять.
func (i *Instance) Actors() []*domain.Actor {
	return i.actors
}

func (i *Instance) Frame() int { return i.frame }

func (i *Instance) Time() float64 { return i.time }

func (i *Instance) TileSize() float64 { return i.tileSize }

// IsControlled сообщает, управляет ли актёром хост.
func (i *Instance) IsControlled(id types.EntityID) bool {
	return i.controlled[id]
}

// Hostiles возвращает число живых актёров, враждебных команде team.
func (i *Instance) Hostiles(team string) int {
	n := 0
	for _, a := range i.actors {
		if !a.IsDead() && a.Team != team {
			n++
		}
	}
	return n
}
