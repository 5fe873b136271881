package dungeon

import (
	"math/rand"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

func buildTestArena(seed int64) *Arena {
	return NewLevel(rand.New(rand.NewSource(seed))).
		WithRooms(MaxRooms).
		SpawnEnemy("goblin", 3).
		ScatterFeature(enums.TileChest, 2).
		PlaceExit("down").
		Build()
}

func TestBuild(t *testing.T) {
	arena := buildTestArena(7)

	// 1. Проверка размеров карты
	if arena.Grid.Width != MapWidth || arena.Grid.Height != MapHeight {
		t.Errorf("Expected map size %dx%d, got %dx%d", MapWidth, MapHeight, arena.Grid.Width, arena.Grid.Height)
	}

	// 2. Должна быть хотя бы одна комната
	if len(arena.Rooms) == 0 {
		t.Fatal("No rooms generated")
	}

	// 3. Игрок не должен появиться в стене
	if domain.IsBlockedAt(arena.Grid, arena.Start, arena.TileSize) {
		t.Errorf("Start position %v is inside a wall!", arena.Start)
	}

	// 4. Враги тоже
	for _, s := range arena.Spawns {
		if domain.IsBlockedAt(arena.Grid, s.Pos, arena.TileSize) {
			t.Errorf("Spawn %s at %v is inside a wall!", s.ClassID, s.Pos)
		}
	}

	// 5. Выход вниз в последней комнате
	if len(arena.Rooms) > 1 && arena.Grid.Count(enums.TileStairsDown) != 1 {
		t.Error("Level exit (>) not found")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := buildTestArena(42)
	b := buildTestArena(42)

	if a.Grid.String() != b.Grid.String() {
		t.Error("Same seed produced different maps")
	}
	if len(a.Spawns) != len(b.Spawns) {
		t.Fatalf("Spawn count differs: %d vs %d", len(a.Spawns), len(b.Spawns))
	}
	for i := range a.Spawns {
		if a.Spawns[i] != b.Spawns[i] {
			t.Errorf("Spawn %d differs: %v vs %v", i, a.Spawns[i], b.Spawns[i])
		}
	}
}

func TestBuild_OpenField(t *testing.T) {
	arena := NewLevel(rand.New(rand.NewSource(1))).WithSize(10, 8).Build()

	if arena.Grid.TileAt(0, 0) != enums.TileWall {
		t.Errorf("Border should be a wall, got %s", arena.Grid.TileAt(0, 0))
	}
	if arena.Grid.TileAt(5, 4) != enums.TileFloor {
		t.Errorf("Inner tile should be floor, got %s", arena.Grid.TileAt(5, 4))
	}
	if got := arena.Grid.Count(enums.TileFloor); got != 8*6 {
		t.Errorf("Expected %d floor tiles, got %d", 8*6, got)
	}
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}

	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}
}
