package systems

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками мира.
// Луч идёт по клеткам алгоритмом Брезенхэма (только целочисленная арифметика),
// клетки начала и конца не проверяются.
func HasLineOfSight(grid domain.TileGrid, tileSize float64, p1, p2 domain.Vec2) bool {
	if !p1.IsFinite() || !p2.IsFinite() {
		if entry, ok := losDebug(p1, p2); ok {
			entry.Debug("Check finished: non-finite point. Result: false")
		}
		return false
	}

	x0, y0 := domain.WorldToTile(p1, tileSize)
	x1, y1 := domain.WorldToTile(p2, tileSize)
	startX, startY := x0, y0

	if x0 == x1 && y0 == y1 {
		if entry, ok := losDebug(p1, p2); ok {
			entry.Debug("Check finished: same tile. Result: true")
		}
		return true
	}

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := sign(x1-x0), sign(y1-y0)

	err := dx - dy

	for {
		isStartPoint := x0 == startX && y0 == startY
		isEndPoint := x0 == x1 && y0 == y1

		if !isStartPoint && !isEndPoint && grid.TileAt(x0, y0).IsBlocking() {
			if entry, ok := losDebug(p1, p2); ok {
				entry.WithField("blocking_tile", map[string]int{"x": x0, "y": y0}).
					Debug("Check finished: Line is blocked. Result: false")
			}
			return false
		}

		if isEndPoint {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	if entry, ok := losDebug(p1, p2); ok {
		entry.Debug("Check finished: No obstructions found. Result: true")
	}
	return true
}

// ValidateDisplacement ведёт AABB с полуразмерами half из from вдоль delta
// шагами не длиннее step и возвращает последнюю свободную точку.
// Используется для рывка и телепорта, чтобы не проходить сквозь стены.
func ValidateDisplacement(grid domain.TileGrid, tileSize float64, from, half, delta domain.Vec2, step float64) domain.Vec2 {
	if !from.IsFinite() || !delta.IsFinite() {
		return from
	}
	dist := delta.Len()
	if dist == 0 {
		return from
	}
	if !(step > 0) {
		step = tileSize / 8
	}

	steps := int(math.Ceil(dist / step))
	inc := delta.Scale(1 / float64(steps))
	last := from
	for i := 1; i <= steps; i++ {
		next := from.Add(inc.Scale(float64(i)))
		if domain.IsBoxBlocked(grid, next, half, tileSize) {
			break
		}
		last = next
	}
	return last
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// losDebug собирает запись лога только при включённом Debug:
// проверка видимости идёт каждый кадр для каждого NPC.
func losDebug(p1, p2 domain.Vec2) (*logrus.Entry, bool) {
	if logger.Log == nil || !logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		return nil, false
	}
	return logger.For("physics_system").WithFields(logrus.Fields{
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	}), true
}
