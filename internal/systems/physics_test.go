package systems

import (
	"math"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/dungeon"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

const testTile = 32.0

// Helper для создания карты из ASCII-строк
func createTestGrid(rows ...string) *dungeon.Grid {
	g, err := dungeon.ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// openGrid — поле из пола без стен.
func openGrid(w, h int) *dungeon.Grid {
	return dungeon.NewGrid(w, h, enums.TileFloor)
}

func tc(x, y int) domain.Vec2 {
	return domain.TileCenter(x, y, testTile)
}

func TestHasLineOfSight(t *testing.T) {
	// Карта 5x5
	// . . . . .
	// . . # . .  (2,1) - стена
	// . # # # .  (1,2), (2,2), (3,2) - стена
	// . . # . .  (2,3) - стена
	// . . . . .
	grid := createTestGrid(
		".....",
		"..#..",
		".###.",
		"..#..",
		".....",
	)

	tests := []struct {
		name string
		p1   domain.Vec2
		p2   domain.Vec2
		want bool
	}{
		{"Clear horizontal", tc(0, 0), tc(4, 0), true},
		{"Blocked horizontal", tc(0, 2), tc(4, 2), false},
		{"Clear diagonal", tc(0, 0), tc(1, 1), true},
		{"Blocked diagonal", tc(0, 0), tc(4, 4), false}, // через (2,2)
		{"Adjacent wall", tc(2, 1), tc(2, 2), true},     // Стоим рядом со стеной и смотрим на неё
		{"Behind wall", tc(2, 1), tc(2, 3), false},      // Стена (2,2) мешает
		{"Same tile", domain.Vec2{X: 1, Y: 1}, domain.Vec2{X: 30, Y: 30}, true},
		{"Out of map", tc(0, 0), tc(8, 0), false}, // за краем пустота
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLineOfSight(grid, testTile, tt.p1, tt.p2))
		})
	}
}

func TestValidateDisplacement(t *testing.T) {
	// Стена в колонке 5 (x 160..192)
	grid := createTestGrid(
		"#######",
		"#....##",
		"#....##",
		"#######",
	)
	half := domain.Vec2{X: 10, Y: 10}

	t.Run("stops before wall", func(t *testing.T) {
		from := domain.Vec2{X: 60, Y: 48}
		got := ValidateDisplacement(grid, testTile, from, half, domain.Vec2{X: 200}, 4)
		assert.LessOrEqual(t, got.X+half.X, 160.0)
		assert.Greater(t, got.X, 140.0)
		assert.Equal(t, from.Y, got.Y)
	})

	t.Run("free path", func(t *testing.T) {
		from := domain.Vec2{X: 60, Y: 60}
		got := ValidateDisplacement(grid, testTile, from, half, domain.Vec2{X: 40}, 4)
		assert.InDelta(t, 100.0, got.X, 1e-9)
	})

	t.Run("last free step", func(t *testing.T) {
		// Шаг до y=40 задевает верхнюю стену, остаёмся на y=44
		from := domain.Vec2{X: 48, Y: 48}
		got := ValidateDisplacement(grid, testTile, from, half, domain.Vec2{Y: -100}, 4)
		assert.InDelta(t, 44.0, got.Y, 1e-9)
		assert.Equal(t, from.X, got.X)
	})

	t.Run("non-finite delta", func(t *testing.T) {
		from := domain.Vec2{X: 48, Y: 48}
		got := ValidateDisplacement(grid, testTile, from, half, domain.Vec2{X: nan()}, 4)
		assert.Equal(t, from, got)
	})
}

func nan() float64 {
	return math.NaN()
}

func TestHasLineOfSight_LogsOnlyAtDebug(t *testing.T) {
	grid := createTestGrid(
		"#####",
		"#...#",
		"#####",
	)
	hook := logtest.NewLocal(logger.Log)
	prev := logger.Log.GetLevel()
	t.Cleanup(func() {
		logger.Log.SetLevel(prev)
		logger.Log.ReplaceHooks(make(logrus.LevelHooks))
	})

	logger.Log.SetLevel(logrus.InfoLevel)
	assert.True(t, HasLineOfSight(grid, testTile, tc(1, 1), tc(3, 1)))
	assert.Empty(t, hook.AllEntries())

	logger.Log.SetLevel(logrus.DebugLevel)
	assert.True(t, HasLineOfSight(grid, testTile, tc(1, 1), tc(3, 1)))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "HasLineOfSight", entry.Data["function"])
		assert.Equal(t, "physics_system", entry.Data["component"])
	}
}
