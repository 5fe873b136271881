package domain

// MovementState — таймеры рывка, телепорта и парирования.
type MovementState struct {
	IsDashing       bool    `json:"isDashing"`
	DashTimer       float64 `json:"dashTimer"`
	DashCooldown    float64 `json:"dashCooldown"`
	DashChainWindow float64 `json:"dashChainWindow"`
	DashChainCount  int     `json:"dashChainCount"`

	TeleportCooldown float64 `json:"teleportCooldown"`

	IsParrying    bool    `json:"isParrying"`
	ParryWindow   float64 `json:"parryWindow"`
	ParryCooldown float64 `json:"parryCooldown"`

	// Invulnerable — оставшееся время неуязвимости.
	Invulnerable float64 `json:"invulnerable"`

	// pending — смещение от рывка/телепорта, которое ещё не прошло проверку стен.
	pending Vec2
	// chainWindow — длительность окна цепочки, заданная последним рывком.
	chainWindow float64
}

// Tick продвигает таймеры на dt.
//
// Окно цепочки открывается в момент окончания рывка и уменьшается
// только в следующих кадрах. Если окно закрылось без нового рывка,
// счётчик цепочки сбрасывается.
func (m *MovementState) Tick(dt float64) {
	if m.IsDashing {
		m.DashTimer -= dt
		if m.DashTimer <= 0 {
			m.DashTimer = 0
			m.IsDashing = false
			m.DashChainWindow = m.chainWindow
		}
	} else if m.DashChainWindow > 0 {
		m.DashChainWindow -= dt
		if m.DashChainWindow <= 0 {
			m.DashChainWindow = 0
			m.DashChainCount = 0
		}
	}

	m.DashCooldown = countdown(m.DashCooldown, dt)
	m.TeleportCooldown = countdown(m.TeleportCooldown, dt)
	m.ParryCooldown = countdown(m.ParryCooldown, dt)
	m.Invulnerable = countdown(m.Invulnerable, dt)

	if m.IsParrying {
		m.ParryWindow -= dt
		if m.ParryWindow <= 0 {
			m.ParryWindow = 0
			m.IsParrying = false
		}
	}
}

func countdown(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
