package systems

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// MovementResult — результат перемещения актёра за кадр
type MovementResult struct {
	From, To domain.Vec2
	HasMoved bool
	// HitWallX/HitWallY — по какой оси тело упёрлось в стену.
	HitWallX, HitWallY bool
	// Displaced — отработано смещение рывка или телепорта.
	Displaced bool
}

// ResolveActorMovement интегрирует тело актёра с учётом стен и применяет
// отложенное смещение рывка/телепорта. Мёртвые не двигаются.
//
// Если полный шаг упирается в стену, пробуем сдвиг по каждой оси отдельно
// (скольжение вдоль стены), скорость по заблокированной оси обнуляется.
func ResolveActorMovement(a *domain.Actor, grid domain.TileGrid, tileSize, dt float64) MovementResult {
	body := a.Body
	res := MovementResult{From: body.Pos, To: body.Pos}
	if a.IsDead() || !body.Active {
		a.TakePendingDisplacement()
		return res
	}

	half := body.Half()
	from := body.Pos
	body.Integrate(dt)
	if !body.Pos.IsFinite() {
		body.Pos = from
		body.Vel = domain.Vec2{}
	}

	if body.Pos != from && domain.IsBoxBlocked(grid, body.Pos, half, tileSize) {
		target := body.Pos
		body.Pos = from

		xOnly := domain.Vec2{X: target.X, Y: from.Y}
		if !domain.IsBoxBlocked(grid, xOnly, half, tileSize) {
			body.Pos = xOnly
		} else {
			res.HitWallX = true
			body.Vel.X = 0
		}

		yOnly := domain.Vec2{X: body.Pos.X, Y: target.Y}
		if !domain.IsBoxBlocked(grid, yOnly, half, tileSize) {
			body.Pos = yOnly
		} else {
			res.HitWallY = true
			body.Vel.Y = 0
		}
	}

	if delta := a.TakePendingDisplacement(); !delta.IsZero() {
		step := a.Rules().DisplacementStep
		body.Pos = ValidateDisplacement(grid, tileSize, body.Pos, half, delta, step)
		res.Displaced = true
	}

	res.To = body.Pos
	res.HasMoved = res.To != res.From
	return res
}
