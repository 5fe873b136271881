package enums

import (
	"fmt"
	"strings"
)

// AttackKind — геометрия боевого инстанса.
type AttackKind uint8

const (
	AttackUnknown AttackKind = iota
	AttackMelee
	AttackProjectile
	AttackRing
	AttackZone
)

var attackKindToString = map[AttackKind]string{
	AttackMelee:      "MELEE",
	AttackProjectile: "PROJECTILE",
	AttackRing:       "RING",
	AttackZone:       "ZONE",
}

var attackKindStringToType = map[string]AttackKind{
	"MELEE":      AttackMelee,
	"PROJECTILE": AttackProjectile,
	"RING":       AttackRing,
	"ZONE":       AttackZone,
}

func (k AttackKind) String() string {
	if val, ok := attackKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseAttackKind(s string) AttackKind {
	if val, ok := attackKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return AttackUnknown
}

func (k *AttackKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, "attack kind", k, ParseAttackKind, AttackUnknown)
}

// Element — стихия урона. Каждая стихия (кроме None) вешает свой статус.
type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementIce
	ElementPoison
	ElementLightning
	ElementHoly
)

var elementToString = map[Element]string{
	ElementNone:      "NONE",
	ElementFire:      "FIRE",
	ElementIce:       "ICE",
	ElementPoison:    "POISON",
	ElementLightning: "LIGHTNING",
	ElementHoly:      "HOLY",
}

var elementStringToType = map[string]Element{
	"NONE":      ElementNone,
	"FIRE":      ElementFire,
	"ICE":       ElementIce,
	"POISON":    ElementPoison,
	"LIGHTNING": ElementLightning,
	"HOLY":      ElementHoly,
}

func (e Element) String() string {
	if val, ok := elementToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseElement возвращает ElementNone для пустой строки.
func ParseElement(s string) (Element, bool) {
	if s == "" {
		return ElementNone, true
	}
	val, ok := elementStringToType[strings.ToUpper(s)]
	return val, ok
}

func (e *Element) UnmarshalText(text []byte) error {
	val, ok := ParseElement(string(text))
	if !ok {
		return fmt.Errorf("unknown element %q", string(text))
	}
	*e = val
	return nil
}
