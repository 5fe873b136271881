package systems

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// ResultKind — чем закончилось попадание или тик эффекта.
type ResultKind uint8

const (
	ResultHit ResultKind = iota
	ResultBlocked
	ResultAbsorbed
	ResultParried
	ResultInvulnerable
	ResultTick
	ResultHeal
)

var resultKindToString = map[ResultKind]string{
	ResultHit:          "HIT",
	ResultBlocked:      "BLOCKED",
	ResultAbsorbed:     "ABSORBED",
	ResultParried:      "PARRIED",
	ResultInvulnerable: "INVULNERABLE",
	ResultTick:         "TICK",
	ResultHeal:         "HEAL",
}

func (k ResultKind) String() string {
	if val, ok := resultKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func (k ResultKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CombatResult — одна запись для слоя представления (цифры урона, уведомления).
// Список результатов живёт один кадр.
type CombatResult struct {
	TargetID types.EntityID `json:"targetId"`
	SourceID types.EntityID `json:"sourceId"`
	AttackID types.EntityID `json:"attackId,omitempty"`
	Amount   float64        `json:"amount"`
	IsCrit   bool           `json:"isCrit"`
	Kind     ResultKind     `json:"kind"`
	Killed   bool           `json:"killed,omitempty"`
}

// resultKindFor переводит итог damage pipeline в вид результата.
// Щит маны, оплативший весь удар, считается поглощением.
func resultKindFor(out domain.DamageOutcome) ResultKind {
	switch out.Stage {
	case domain.StageInvulnerable, domain.StageRejected:
		return ResultInvulnerable
	case domain.StageParried:
		return ResultParried
	case domain.StageBlocked:
		return ResultBlocked
	case domain.StageAbsorbed:
		return ResultAbsorbed
	case domain.StageManaShield:
		if out.Applied == 0 {
			return ResultAbsorbed
		}
	}
	return ResultHit
}
