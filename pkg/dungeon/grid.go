package dungeon

import (
	"fmt"
	"strings"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
)

// Grid — прямоугольная карта клеток. Реализует domain.TileGrid.
// Клетки за пределами карты читаются как пустота.
type Grid struct {
	Width  int
	Height int
	tiles  []enums.TileKind
}

// NewGrid создаёт карту, заполненную клетками fill.
func NewGrid(width, height int, fill enums.TileKind) *Grid {
	g := &Grid{Width: width, Height: height, tiles: make([]enums.TileKind, width*height)}
	for i := range g.tiles {
		g.tiles[i] = fill
	}
	return g
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) TileAt(x, y int) enums.TileKind {
	if !g.InBounds(x, y) {
		return enums.TileVoid
	}
	return g.tiles[y*g.Width+x]
}

// Set меняет клетку. За пределами карты ничего не делает.
func (g *Grid) Set(x, y int, kind enums.TileKind) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.tiles[y*g.Width+x] = kind
	return true
}

// FillRect заполняет прямоугольник (включая края).
func (g *Grid) FillRect(r Rect, kind enums.TileKind) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.Set(x, y, kind)
		}
	}
}

// Count считает клетки вида kind.
func (g *Grid) Count(kind enums.TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == kind {
			n++
		}
	}
	return n
}

// Символы ASCII-представления карты
var tileToRune = map[enums.TileKind]rune{
	enums.TileVoid:       ' ',
	enums.TileWall:       '#',
	enums.TileFloor:      '.',
	enums.TileDoor:       '+',
	enums.TileStairsUp:   '<',
	enums.TileStairsDown: '>',
	enums.TileChest:      '$',
	enums.TileTrap:       '^',
	enums.TileWater:      '~',
	enums.TileLava:       '=',
}

var runeToTile = func() map[rune]enums.TileKind {
	m := make(map[rune]enums.TileKind, len(tileToRune))
	for k, r := range tileToRune {
		m[r] = k
	}
	return m
}()

// ParseGrid строит карту из ASCII-строк. Короткие строки дополняются пустотой.
func ParseGrid(rows []string) (*Grid, error) {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	g := NewGrid(width, len(rows), enums.TileVoid)
	for y, row := range rows {
		for x, r := range []rune(row) {
			kind, ok := runeToTile[r]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, r)
			}
			g.Set(x, y, kind)
		}
	}
	return g, nil
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(tileToRune[g.TileAt(x, y)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
