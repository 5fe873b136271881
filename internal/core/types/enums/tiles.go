package enums

import "strings"

// TileKind — тип клетки арены.
type TileKind uint8

const (
	TileVoid TileKind = iota
	TileWall
	TileFloor
	TileDoor
	TileStairsUp
	TileStairsDown
	TileChest
	TileTrap
	TileWater
	TileLava
)

var tileKindToString = map[TileKind]string{
	TileVoid:       "VOID",
	TileWall:       "WALL",
	TileFloor:      "FLOOR",
	TileDoor:       "DOOR",
	TileStairsUp:   "STAIRS_UP",
	TileStairsDown: "STAIRS_DOWN",
	TileChest:      "CHEST",
	TileTrap:       "TRAP",
	TileWater:      "WATER",
	TileLava:       "LAVA",
}

var tileKindStringToType = map[string]TileKind{
	"VOID":        TileVoid,
	"WALL":        TileWall,
	"FLOOR":       TileFloor,
	"DOOR":        TileDoor,
	"STAIRS_UP":   TileStairsUp,
	"STAIRS_DOWN": TileStairsDown,
	"CHEST":       TileChest,
	"TRAP":        TileTrap,
	"WATER":       TileWater,
	"LAVA":        TileLava,
}

func (t TileKind) String() string {
	if val, ok := tileKindToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTileKind возвращает TileVoid для неизвестных строк.
func ParseTileKind(s string) TileKind {
	if val, ok := tileKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return TileVoid
}

// IsBlocking — стена и пустота (за пределами карты) непроходимы.
// Вода, лава, ловушки и сундуки проходимы для физики.
func (t TileKind) IsBlocking() bool {
	return t == TileWall || t == TileVoid
}
