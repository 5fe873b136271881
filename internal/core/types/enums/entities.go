package enums

import "strings"

// EntityKind — вид сущности, упаковывается в EntityID.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindEnemy
	EntityKindAttack
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer: "PLAYER",
	EntityKindEnemy:  "ENEMY",
	EntityKindAttack: "ATTACK",
}

var entityKindStringToType = map[string]EntityKind{
	"PLAYER": EntityKindPlayer,
	"ENEMY":  EntityKindEnemy,
	"ATTACK": EntityKindAttack,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum (нужно для загрузки конфигов)
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToType[upper]; ok {
		return val
	}
	return EntityKindUnknown
}

func (e *EntityKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, "entity kind", e, ParseEntityKind, EntityKindUnknown)
}
