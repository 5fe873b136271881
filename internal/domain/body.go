package domain

import "math"

// Rect — осевой прямоугольник (AABB).
type Rect struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// RectAround строит прямоугольник по центру и полуразмерам.
func RectAround(center, half Vec2) Rect {
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Intersects — строгое пересечение: касание рёбрами пересечением не считается.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y && r.Max.Y > o.Min.Y
}

func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Body — пространственный примитив: позиция (центр), скорость, ускорение,
// размеры и набор тегов. Используется актёрами.
type Body struct {
	Pos      Vec2    `json:"pos"`
	Vel      Vec2    `json:"vel"`
	Acc      Vec2    `json:"-"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	MaxSpeed float64 `json:"-"`
	// Friction — множитель скорости за тик (0..1).
	Friction float64 `json:"-"`
	// Active=false исключает тело из интеграции и попаданий.
	Active bool `json:"active"`

	tags map[string]struct{}
}

// NewBody создаёт активное тело без скорости.
func NewBody(pos Vec2, width, height float64) *Body {
	return &Body{
		Pos:      pos,
		Width:    width,
		Height:   height,
		Friction: 1,
		Active:   true,
		tags:     make(map[string]struct{}),
	}
}

// Integrate продвигает тело на dt: скорость += ускорение*dt, трение,
// ограничение MaxSpeed, затем позиция += скорость*dt.
func (b *Body) Integrate(dt float64) {
	if !b.Active {
		return
	}
	b.Vel = b.Vel.Add(b.Acc.Scale(dt))
	b.Vel = b.Vel.Scale(b.Friction)
	if b.MaxSpeed > 0 {
		if l := b.Vel.Len(); l > b.MaxSpeed {
			b.Vel = b.Vel.Scale(b.MaxSpeed / l)
		}
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Half возвращает полуразмеры.
func (b *Body) Half() Vec2 {
	return Vec2{X: b.Width / 2, Y: b.Height / 2}
}

func (b *Body) Bounds() Rect {
	return RectAround(b.Pos, b.Half())
}

// Radius — радиус для проверок "точка-окружность".
func (b *Body) Radius() float64 {
	return math.Max(b.Width, b.Height) / 2
}

// Overlaps проверяет пересечение AABB двух тел.
func (b *Body) Overlaps(o *Body) bool {
	return b.Bounds().Intersects(o.Bounds())
}

func (b *Body) AddTag(tag string) {
	if b.tags == nil {
		b.tags = make(map[string]struct{})
	}
	b.tags[tag] = struct{}{}
}

func (b *Body) RemoveTag(tag string) {
	delete(b.tags, tag)
}

func (b *Body) HasTag(tag string) bool {
	_, ok := b.tags[tag]
	return ok
}
