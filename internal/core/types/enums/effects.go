package enums

import "strings"

// EffectKind — вид статус-эффекта.
//
// Порядок констант задаёт порядок тика: таблица эффектов актёра
// индексируется этим значением, поэтому итерация детерминирована.
type EffectKind uint8

const (
	EffectUnknown EffectKind = iota
	EffectBurn
	EffectPoison
	EffectBleed
	EffectRegen
	EffectSlow
	EffectHaste
	EffectStun
	EffectAttackUp
	EffectDefenseUp
	EffectBlockShield
	EffectAbsorbShield
	EffectManaShield

	EffectKindCount
)

var effectKindToString = map[EffectKind]string{
	EffectBurn:         "BURN",
	EffectPoison:       "POISON",
	EffectBleed:        "BLEED",
	EffectRegen:        "REGEN",
	EffectSlow:         "SLOW",
	EffectHaste:        "HASTE",
	EffectStun:         "STUN",
	EffectAttackUp:     "ATTACK_UP",
	EffectDefenseUp:    "DEFENSE_UP",
	EffectBlockShield:  "BLOCK_SHIELD",
	EffectAbsorbShield: "ABSORB_SHIELD",
	EffectManaShield:   "MANA_SHIELD",
}

var effectKindStringToType = map[string]EffectKind{
	"BURN":          EffectBurn,
	"POISON":        EffectPoison,
	"BLEED":         EffectBleed,
	"REGEN":         EffectRegen,
	"SLOW":          EffectSlow,
	"HASTE":         EffectHaste,
	"STUN":          EffectStun,
	"ATTACK_UP":     EffectAttackUp,
	"DEFENSE_UP":    EffectDefenseUp,
	"BLOCK_SHIELD":  EffectBlockShield,
	"ABSORB_SHIELD": EffectAbsorbShield,
	"MANA_SHIELD":   EffectManaShield,
}

func (k EffectKind) String() string {
	if val, ok := effectKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseEffectKind(s string) EffectKind {
	if val, ok := effectKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EffectUnknown
}

func (k *EffectKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, "effect kind", k, ParseEffectKind, EffectUnknown)
}

// IsShield — щиты участвуют в damage pipeline, остальные эффекты нет.
func (k EffectKind) IsShield() bool {
	return k == EffectBlockShield || k == EffectAbsorbShield || k == EffectManaShield
}

// IsHarmful — негативные эффекты, которые накладываются при попадании.
func (k EffectKind) IsHarmful() bool {
	switch k {
	case EffectBurn, EffectPoison, EffectBleed, EffectSlow, EffectStun:
		return true
	}
	return false
}
