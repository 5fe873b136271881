package dungeon

import (
	"math/rand"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// Параметры генерации по умолчанию
const (
	MapWidth  = 40
	MapHeight = 25
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10
	TileSize  = 32.0
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Spawn — точка появления врага.
type Spawn struct {
	ClassID string
	Pos     domain.Vec2
}

// Arena — готовая карта с точками появления.
type Arena struct {
	Grid     *Grid
	TileSize float64
	Rooms    []Rect
	Start    domain.Vec2
	Spawns   []Spawn
}

func createRoom(g *Grid, room Rect) {
	g.FillRect(Rect{X: room.X + 1, Y: room.Y + 1, W: room.W - 1, H: room.H - 1}, enums.TileFloor)
}

func createHCorridor(g *Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Set(x, y, enums.TileFloor)
	}
}

func createVCorridor(g *Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Set(x, y, enums.TileFloor)
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// LevelBuilder предоставляет fluent API для создания арен.
// Одинаковый сид даёт одинаковую арену.
type LevelBuilder struct {
	width    int
	height   int
	tileSize float64
	rooms    []Rect
	grid     *Grid
	spawns   []Spawn
	rng      *rand.Rand
}

// NewLevel создает новый builder
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:    MapWidth,
		height:   MapHeight,
		tileSize: TileSize,
		rng:      rng,
	}
}

// WithSize устанавливает размер карты в клетках
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

func (b *LevelBuilder) WithTileSize(size float64) *LevelBuilder {
	if size > 0 {
		b.tileSize = size
	}
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	// Карта изначально сплошная стена
	b.grid = NewGrid(b.width, b.height, enums.TileWall)

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, MaxSize)
		h := b.randRange(MinSize, MaxSize)
		if w+2 > b.width || h+2 > b.height {
			continue
		}
		x := b.randRange(1, b.width-w-1)
		y := b.randRange(1, b.height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(b.grid, newRoom)

		// Соединяем с предыдущей комнатой
		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				createHCorridor(b.grid, prevX, currX, prevY)
				createVCorridor(b.grid, prevY, currY, currX)
			} else {
				createVCorridor(b.grid, prevY, currY, prevX)
				createHCorridor(b.grid, prevX, currX, currY)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

// SpawnEnemy добавляет точки появления класса classID в случайных комнатах (кроме первой)
func (b *LevelBuilder) SpawnEnemy(classID string, count int) *LevelBuilder {
	for i := 0; i < count && len(b.rooms) > 1; i++ {
		room := b.rooms[b.rng.Intn(len(b.rooms)-1)+1]
		cx, cy := room.Center()
		x, y := cx+b.randRange(-1, 1), cy+b.randRange(-1, 1)
		if b.grid.TileAt(x, y) != enums.TileFloor {
			x, y = cx, cy
		}
		b.spawns = append(b.spawns, Spawn{ClassID: classID, Pos: domain.TileCenter(x, y, b.tileSize)})
	}
	return b
}

// ScatterFeature размещает count клеток вида kind на полу комнат.
// Центр первой комнаты не занимается: там старт.
func (b *LevelBuilder) ScatterFeature(kind enums.TileKind, count int) *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}
	sx, sy := b.rooms[0].Center()
	for i := 0; i < count; i++ {
		room := b.rooms[b.rng.Intn(len(b.rooms))]

		// Пробуем найти свободную клетку (макс 20 попыток)
		for attempt := 0; attempt < 20; attempt++ {
			x := room.X + 1 + b.rng.Intn(room.W-1)
			y := room.Y + 1 + b.rng.Intn(room.H-1)
			if (x == sx && y == sy) || b.grid.TileAt(x, y) != enums.TileFloor {
				continue
			}
			b.grid.Set(x, y, kind)
			break
		}
	}
	return b
}

// PlaceExit размещает лестницу: "up" в первой комнате, иначе в последней
func (b *LevelBuilder) PlaceExit(direction string) *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}
	room, kind := b.rooms[len(b.rooms)-1], enums.TileStairsDown
	if direction == "up" {
		room, kind = b.rooms[0], enums.TileStairsUp
	}
	cx, cy := room.Center()
	// Старт и лестница вверх не совпадают
	if direction == "up" {
		cx++
	}
	b.grid.Set(cx, cy, kind)
	return b
}

// GetStartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) GetStartPos() domain.Vec2 {
	if len(b.rooms) > 0 {
		cx, cy := b.rooms[0].Center()
		return domain.TileCenter(cx, cy, b.tileSize)
	}
	return domain.TileCenter(b.width/2, b.height/2, b.tileSize)
}

// Build собирает арену. Без WithRooms получится открытое поле в стенах.
func (b *LevelBuilder) Build() *Arena {
	if b.grid == nil {
		b.grid = NewGrid(b.width, b.height, enums.TileWall)
		b.grid.FillRect(Rect{X: 1, Y: 1, W: b.width - 2, H: b.height - 2}, enums.TileFloor)
	}
	return &Arena{
		Grid:     b.grid,
		TileSize: b.tileSize,
		Rooms:    b.rooms,
		Start:    b.GetStartPos(),
		Spawns:   b.spawns,
	}
}
