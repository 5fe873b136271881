package systems

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/sirupsen/logrus"
)

// AttackInstance — живая атака, которой владеет Resolver.
//
// Набор вариантов закрыт (ближний бой, снаряд, кольцо, зона), но новый вид
// добавляется реализацией этого интерфейса без правок резолвера.
type AttackInstance interface {
	Core() *InstanceCore
	// Advance двигает инстанс на dt. false — инстанс исчерпан по времени или дальности.
	Advance(env *StepEnv, dt float64) bool
	// ResolveWall разбирает столкновение со стеной. false — инстанс уничтожен.
	ResolveWall(env *StepEnv) bool
	// Overlaps проверяет геометрию попадания по цели.
	Overlaps(env *StepEnv, target *domain.Actor) bool
	// AfterHit вызывается после применения урона. false — инстанс израсходован.
	AfterHit(env *StepEnv, target *domain.Actor) bool
}

// InstanceCore — общие поля всех вариантов атак.
type InstanceCore struct {
	ID       types.EntityID   `json:"id"`
	OwnerID  types.EntityID   `json:"ownerId"`
	Team     string           `json:"team"`
	Kind     enums.AttackKind `json:"kind"`
	Pos      domain.Vec2      `json:"pos"`
	Damage   float64          `json:"damage"`
	IsCrit   bool             `json:"isCrit"`
	Element  enums.Element    `json:"element"`
	Age      float64          `json:"age"`
	Lifetime float64          `json:"lifetime"`
	Active   bool             `json:"active"`

	spec domain.AttackSpec
	// hitRate — период повторного попадания по одной цели, <= 0 — один раз.
	hitRate float64
	lastHit map[types.EntityID]float64
}

func newCore(id types.EntityID, spec domain.AttackSpec, lifetime, hitRate float64) InstanceCore {
	return InstanceCore{
		ID:       id,
		OwnerID:  spec.OwnerID,
		Team:     spec.Team,
		Kind:     spec.Kind,
		Pos:      spec.Origin,
		Damage:   spec.Damage,
		IsCrit:   spec.IsCrit,
		Element:  spec.Element,
		Lifetime: lifetime,
		Active:   true,
		spec:     spec,
		hitRate:  hitRate,
		lastHit:  make(map[types.EntityID]float64),
	}
}

func (c *InstanceCore) Core() *InstanceCore {
	return c
}

// Spec возвращает описание, из которого создан инстанс.
func (c *InstanceCore) Spec() domain.AttackSpec {
	return c.spec
}

func (c *InstanceCore) Def() registry.AttackDef {
	return c.spec.Def
}

// HasHit сообщает, попадал ли инстанс по цели хотя бы раз.
func (c *InstanceCore) HasHit(id types.EntityID) bool {
	_, ok := c.lastHit[id]
	return ok
}

// HitCount — число разных целей, по которым попал инстанс.
func (c *InstanceCore) HitCount() int {
	return len(c.lastHit)
}

// canHit — гейт попаданий по одной цели: один раз или не чаще hitRate.
func (c *InstanceCore) canHit(id types.EntityID, now float64) bool {
	last, ok := c.lastHit[id]
	if !ok {
		return true
	}
	if c.hitRate <= 0 {
		return false
	}
	return now-last >= c.hitRate-1e-9
}

func (c *InstanceCore) markHit(id types.EntityID, now float64) {
	c.lastHit[id] = now
}

// age продвигает возраст. false — время жизни вышло.
func (c *InstanceCore) age(dt float64) bool {
	c.Age += dt
	return c.Lifetime <= 0 || c.Age < c.Lifetime
}

// StepEnv — окружение одного тика резолвера.
type StepEnv struct {
	Grid     domain.TileGrid
	TileSize float64
	Now      float64

	actors []*domain.Actor
	byID   map[types.EntityID]*domain.Actor
	spawn  func(domain.AttackSpec)
	log    *logrus.Entry
}

func newStepEnv(grid domain.TileGrid, tileSize, now float64, actors []*domain.Actor, spawn func(domain.AttackSpec), log *logrus.Entry) *StepEnv {
	env := &StepEnv{
		Grid:     grid,
		TileSize: tileSize,
		Now:      now,
		actors:   actors,
		byID:     make(map[types.EntityID]*domain.Actor, len(actors)),
		spawn:    spawn,
		log:      log,
	}
	for _, a := range actors {
		env.byID[a.ID] = a
	}
	return env
}

// Actor возвращает актёра по ID или nil. Владелец атаки мог уже умереть и исчезнуть.
func (e *StepEnv) Actor(id types.EntityID) *domain.Actor {
	return e.byID[id]
}

func (e *StepEnv) Actors() []*domain.Actor {
	return e.actors
}

// Spawn ставит новую атаку в очередь. Она начнёт жить со следующего кадра.
func (e *StepEnv) Spawn(spec domain.AttackSpec) {
	if e.spawn != nil {
		e.spawn(spec)
	}
}

func (e *StepEnv) blocked(p domain.Vec2) bool {
	if e.Grid == nil {
		return false
	}
	return domain.IsBlockedAt(e.Grid, p, e.TileSize)
}
