package domain

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
)

// TileGrid — контракт карты арены, который предоставляет хост.
//
// Клетки за пределами карты обязаны возвращать enums.TileVoid:
// пустота непроходима, поэтому граница мира закрыта без отдельных проверок.
type TileGrid interface {
	TileAt(tx, ty int) enums.TileKind
}

// WorldToTile переводит мировые координаты в координаты клетки.
func WorldToTile(p Vec2, tileSize float64) (int, int) {
	return int(math.Floor(p.X / tileSize)), int(math.Floor(p.Y / tileSize))
}

// TileCenter возвращает центр клетки в мировых координатах.
func TileCenter(tx, ty int, tileSize float64) Vec2 {
	return Vec2{X: (float64(tx) + 0.5) * tileSize, Y: (float64(ty) + 0.5) * tileSize}
}

// IsBlockedAt проверяет, стоит ли точка в непроходимой клетке.
func IsBlockedAt(grid TileGrid, p Vec2, tileSize float64) bool {
	if !p.IsFinite() {
		return true
	}
	tx, ty := WorldToTile(p, tileSize)
	return grid.TileAt(tx, ty).IsBlocking()
}

// IsBoxBlocked проверяет четыре угла AABB с центром center.
// Тела меньше клетки, поэтому проверки углов достаточно.
func IsBoxBlocked(grid TileGrid, center Vec2, half Vec2, tileSize float64) bool {
	const eps = 1e-6
	corners := [4]Vec2{
		{X: center.X - half.X, Y: center.Y - half.Y},
		{X: center.X + half.X - eps, Y: center.Y - half.Y},
		{X: center.X - half.X, Y: center.Y + half.Y - eps},
		{X: center.X + half.X - eps, Y: center.Y + half.Y - eps},
	}
	for _, c := range corners {
		if IsBlockedAt(grid, c, tileSize) {
			return true
		}
	}
	return false
}
