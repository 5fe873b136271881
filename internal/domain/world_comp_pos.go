package domain

import "math"

// Vec2 — точка или вектор в мировых координатах (пиксели, float).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len возвращает длину вектора.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq возвращает квадрат длины, для сравнения без корней.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// DistanceTo возвращает расстояние до другой точки.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Angle возвращает направление вектора в радианах.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate поворачивает вектор на angle радиан против часовой стрелки.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite — false для NaN и бесконечностей.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// FromAngle возвращает вектор длины length в направлении angle.
func FromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos * length, Y: sin * length}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
