package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionAttack
	ActionUseAbility
	ActionDash
	ActionTeleport
	ActionParry
	ActionCycleSpell
	ActionEquip
	ActionUnequip
	ActionAllocateStat
	ActionLearnSkill
	ActionWait
)

// Маппинг для конвертации строк -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":          ActionMove,
	"ATTACK":        ActionAttack,
	"USE_ABILITY":   ActionUseAbility,
	"DASH":          ActionDash,
	"TELEPORT":      ActionTeleport,
	"PARRY":         ActionParry,
	"CYCLE_SPELL":   ActionCycleSpell,
	"EQUIP":         ActionEquip,
	"UNEQUIP":       ActionUnequip,
	"ALLOCATE_STAT": ActionAllocateStat,
	"LEARN_SKILL":   ActionLearnSkill,
	"WAIT":          ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:         "MOVE",
	ActionAttack:       "ATTACK",
	ActionUseAbility:   "USE_ABILITY",
	ActionDash:         "DASH",
	ActionTeleport:     "TELEPORT",
	ActionParry:        "PARRY",
	ActionCycleSpell:   "CYCLE_SPELL",
	ActionEquip:        "EQUIP",
	ActionUnequip:      "UNEQUIP",
	ActionAllocateStat: "ALLOCATE_STAT",
	ActionLearnSkill:   "LEARN_SKILL",
	ActionWait:         "WAIT",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
