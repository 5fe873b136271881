package domain

import (
	"errors"
	"fmt"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
)

var ErrInvalidCommand = errors.New("invalid command")

// Command — намерение актёра на текущий кадр.
// Используются только поля, относящиеся к Action.
type Command struct {
	Actor  types.EntityID
	Action ActionType
	// Dir — направление для MOVE, DASH, TELEPORT.
	Dir Vec2
	// Target — точка прицеливания для ATTACK и USE_ABILITY.
	Target  Vec2
	Index   int
	ItemID  string
	Slot    enums.EquipSlot
	Stat    enums.Stat
	SkillID string
}

// Validate проверяет форму команды. Семантические отказы (перезарядка,
// ресурсы) проверяет сам актёр, это не ошибки.
func (c Command) Validate() error {
	if c.Actor.IsNil() {
		return fmt.Errorf("%w: actor is required", ErrInvalidCommand)
	}

	switch c.Action {
	case ActionMove:
		if !c.Dir.IsFinite() {
			return fmt.Errorf("%w: move direction is not finite", ErrInvalidCommand)
		}
	case ActionDash, ActionTeleport:
		if !c.Dir.IsFinite() || c.Dir.IsZero() {
			return fmt.Errorf("%w: %s needs a direction", ErrInvalidCommand, c.Action)
		}
	case ActionAttack:
		if !c.Target.IsFinite() {
			return fmt.Errorf("%w: attack target is not finite", ErrInvalidCommand)
		}
	case ActionUseAbility:
		if c.Index < 0 {
			return fmt.Errorf("%w: ability index %d", ErrInvalidCommand, c.Index)
		}
		if !c.Target.IsFinite() {
			return fmt.Errorf("%w: ability target is not finite", ErrInvalidCommand)
		}
	case ActionEquip:
		if c.ItemID == "" {
			return fmt.Errorf("%w: item id is required", ErrInvalidCommand)
		}
	case ActionUnequip:
		if c.Slot == enums.SlotUnknown || c.Slot >= enums.EquipSlotCount {
			return fmt.Errorf("%w: unknown slot", ErrInvalidCommand)
		}
	case ActionAllocateStat:
		if c.Stat == enums.StatUnknown {
			return fmt.Errorf("%w: unknown stat", ErrInvalidCommand)
		}
	case ActionLearnSkill:
		if c.SkillID == "" {
			return fmt.Errorf("%w: skill id is required", ErrInvalidCommand)
		}
	case ActionParry, ActionCycleSpell, ActionWait:
	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidCommand, c.Action)
	}
	return nil
}
