package domain

import "math"

// Dash — рывок в направлении (dx, dy).
//
// Первый рывок стоит полную цену и запускает перезарядку. Рывок внутри
// окна цепочки увеличивает счётчик цепочки, стоит
// max(ChainMinCost, StaminaCost - count*ChainCostStep) и перезарядку не
// запускает. Смещение только резервируется: стены проверяются на этапе
// разрешения движения.
func (a *Actor) Dash(dx, dy float64) bool {
	if !a.Class.CanDash || a.IsDead() || a.IsStunned() || a.Action.Is(ActionStateCasting) {
		return false
	}
	m := &a.Movement
	if m.IsDashing {
		return false
	}
	dir := Vec2{X: dx, Y: dy}
	if !dir.IsFinite() {
		return false
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		return false
	}

	rules := a.rules.Dash
	chained := m.DashChainWindow > 0
	cost := rules.StaminaCost
	if chained {
		cost = rules.ChainCost(m.DashChainCount + 1)
	} else if m.DashCooldown > 0 {
		return false
	}
	if !a.Stamina.Spend(cost) {
		return false
	}

	if chained {
		m.DashChainCount++
		m.DashChainWindow = 0
	} else {
		m.DashChainCount = 0
		m.DashCooldown = rules.Cooldown
	}

	m.IsDashing = true
	m.DashTimer = rules.Duration
	m.chainWindow = rules.ChainWindow
	m.Invulnerable = math.Max(m.Invulnerable, rules.Invulnerability)
	m.pending = m.pending.Add(dir.Scale(rules.Distance))
	a.Facing = dir
	return true
}

// Teleport — мгновенное перемещение без цепочек, оплачивается маной.
func (a *Actor) Teleport(dx, dy float64) bool {
	if !a.Class.CanTeleport || a.IsDead() || a.IsStunned() || a.Action.Is(ActionStateCasting) {
		return false
	}
	m := &a.Movement
	if m.TeleportCooldown > 0 {
		return false
	}
	dir := Vec2{X: dx, Y: dy}
	if !dir.IsFinite() {
		return false
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		return false
	}

	rules := a.rules.Teleport
	if !a.Mana.Spend(rules.ManaCost) {
		return false
	}

	m.TeleportCooldown = rules.Cooldown
	m.Invulnerable = math.Max(m.Invulnerable, rules.Invulnerability)
	m.pending = m.pending.Add(dir.Scale(rules.Distance))
	a.Facing = dir
	return true
}

// StartParry открывает окно идеального блока.
func (a *Actor) StartParry() bool {
	if !a.Class.CanParry || a.IsDead() || a.IsStunned() {
		return false
	}
	m := &a.Movement
	if m.IsParrying || m.ParryCooldown > 0 {
		return false
	}

	rules := a.rules.Parry
	if !a.Stamina.Spend(rules.StaminaCost) {
		return false
	}

	m.IsParrying = true
	m.ParryWindow = rules.Window
	m.ParryCooldown = rules.Cooldown
	return true
}

// PendingDisplacement возвращает зарезервированное смещение, не сбрасывая его.
func (a *Actor) PendingDisplacement() Vec2 {
	return a.Movement.pending
}

// TakePendingDisplacement забирает зарезервированное смещение.
func (a *Actor) TakePendingDisplacement() Vec2 {
	d := a.Movement.pending
	a.Movement.pending = Vec2{}
	return d
}
