package enums

import "strings"

// Stat — базовая характеристика, в которую можно вложить очко.
type Stat uint8

const (
	StatUnknown Stat = iota
	StatStrength
	StatAgility
	StatIntelligence
	StatVitality
	StatLuck
)

var statToString = map[Stat]string{
	StatStrength:     "STR",
	StatAgility:      "AGI",
	StatIntelligence: "INT",
	StatVitality:     "VIT",
	StatLuck:         "LUCK",
}

var statStringToType = map[string]Stat{
	"STR":  StatStrength,
	"AGI":  StatAgility,
	"INT":  StatIntelligence,
	"VIT":  StatVitality,
	"LUCK": StatLuck,
}

func (s Stat) String() string {
	if val, ok := statToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseStat(s string) Stat {
	if val, ok := statStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return StatUnknown
}

func (s *Stat) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, "stat", s, ParseStat, StatUnknown)
}

// EquipSlot — слот экипировки. Аксессуаров два, предмет подходит в любой из них.
type EquipSlot uint8

const (
	SlotUnknown EquipSlot = iota
	SlotWeapon
	SlotArmor
	SlotHelmet
	SlotBoots
	SlotAccessory1
	SlotAccessory2

	EquipSlotCount
)

var equipSlotToString = map[EquipSlot]string{
	SlotWeapon:     "WEAPON",
	SlotArmor:      "ARMOR",
	SlotHelmet:     "HELMET",
	SlotBoots:      "BOOTS",
	SlotAccessory1: "ACCESSORY_1",
	SlotAccessory2: "ACCESSORY_2",
}

var equipSlotStringToType = map[string]EquipSlot{
	"WEAPON":      SlotWeapon,
	"ARMOR":       SlotArmor,
	"HELMET":      SlotHelmet,
	"BOOTS":       SlotBoots,
	"ACCESSORY_1": SlotAccessory1,
	"ACCESSORY_2": SlotAccessory2,
	// Предмет-аксессуар в реестре занимает первый свободный из двух слотов.
	"ACCESSORY": SlotAccessory1,
}

func (s EquipSlot) String() string {
	if val, ok := equipSlotToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseEquipSlot(s string) EquipSlot {
	if val, ok := equipSlotStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return SlotUnknown
}

func (s *EquipSlot) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, "equip slot", s, ParseEquipSlot, SlotUnknown)
}

// IsAccessory — один из двух слотов аксессуаров.
func (s EquipSlot) IsAccessory() bool {
	return s == SlotAccessory1 || s == SlotAccessory2
}
