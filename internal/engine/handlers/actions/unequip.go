package actions

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
)

// HandleUnequip снимает предмет из слота.
func HandleUnequip(ctx handlers.Context, slot enums.EquipSlot) (handlers.Result, error) {
	prev, ok := ctx.Actor.Unequip(slot)
	if !ok {
		return handlers.Rejected("slot " + slot.String() + " is empty"), nil
	}
	return handlers.Result{Accepted: true, Msg: prev.ID}, nil
}
