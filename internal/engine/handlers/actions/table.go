package actions

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
)

// Table возвращает таблицу хендлеров для всех действий.
func Table() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:         handlers.WithArg(handlers.Direction, HandleMove),
		domain.ActionAttack:       handlers.WithArg(handlers.Target, HandleAttack),
		domain.ActionUseAbility:   handlers.WithArg(handlers.Ability, HandleUseAbility),
		domain.ActionDash:         handlers.WithArg(handlers.Direction, HandleDash),
		domain.ActionTeleport:     handlers.WithArg(handlers.Direction, HandleTeleport),
		domain.ActionParry:        handlers.WithEmptyArg(HandleParry),
		domain.ActionCycleSpell:   handlers.WithEmptyArg(HandleCycleSpell),
		domain.ActionEquip:        handlers.WithArg(handlers.ItemID, HandleEquip),
		domain.ActionUnequip:      handlers.WithArg(slotOf, HandleUnequip),
		domain.ActionAllocateStat: handlers.WithArg(statOf, HandleAllocateStat),
		domain.ActionLearnSkill:   handlers.WithArg(handlers.SkillID, HandleLearnSkill),
		domain.ActionWait:         handlers.WithEmptyArg(HandleWait),
	}
}

func slotOf(cmd domain.Command) enums.EquipSlot { return cmd.Slot }

func statOf(cmd domain.Command) enums.Stat { return cmd.Stat }
