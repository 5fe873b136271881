package actions

import (
	"fmt"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
)

// HandleAllocateStat вкладывает очко характеристики.
func HandleAllocateStat(ctx handlers.Context, stat enums.Stat) (handlers.Result, error) {
	if !ctx.Actor.AllocateStat(stat) {
		return handlers.Rejected("no stat points"), nil
	}
	return handlers.Accepted(), nil
}

// HandleLearnSkill изучает навык из дерева.
// Неизвестный навык - ошибка команды, нехватка очков или требований - отказ.
func HandleLearnSkill(ctx handlers.Context, skillID string) (handlers.Result, error) {
	if _, ok := ctx.Registry.Skill(skillID); !ok {
		return handlers.Result{}, fmt.Errorf("%w: %s", registry.ErrUnknownSkill, skillID)
	}
	if !ctx.Actor.LearnSkill(skillID) {
		return handlers.Rejected("cannot learn " + skillID), nil
	}
	return handlers.Accepted(), nil
}
