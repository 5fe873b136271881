package actions

import (
	"fmt"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// HandleEquip обрабатывает команду EQUIP - экипировка оружия/брони по id из реестра.
func HandleEquip(ctx handlers.Context, itemID string) (handlers.Result, error) {
	item, ok := ctx.Registry.Item(itemID)
	if !ok {
		return handlers.Result{}, fmt.Errorf("%w: %s", registry.ErrUnknownItem, itemID)
	}

	prev, ok := ctx.Actor.Equip(item)
	if !ok {
		return handlers.Rejected("cannot equip " + itemID), nil
	}
	if prev != nil {
		return handlers.Result{Accepted: true, Msg: "replaced " + prev.ID}, nil
	}
	return handlers.Accepted(), nil
}
