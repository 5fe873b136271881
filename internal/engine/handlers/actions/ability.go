package actions

import (
	"fmt"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
)

// HandleUseAbility применяет способность из слота.
// Атакующая способность уходит в резолвер, лечение попадает в отчёт кадра.
func HandleUseAbility(ctx handlers.Context, arg handlers.AbilityArg) (handlers.Result, error) {
	out := ctx.Actor.UseAbility(arg.Index, arg.Target)
	if out == nil {
		return handlers.Rejected(fmt.Sprintf("ability %d not ready", arg.Index)), nil
	}

	switch out.Kind {
	case registry.AbilityAttack:
		if out.Attack != nil {
			return spawn(ctx, *out.Attack)
		}
	case registry.AbilityHeal:
		ctx.Report(systems.CombatResult{
			TargetID: ctx.Actor.ID,
			SourceID: ctx.Actor.ID,
			Amount:   out.Healed,
			Kind:     systems.ResultHeal,
		})
	}
	return handlers.Result{Accepted: true, Msg: out.AbilityID}, nil
}

// HandleCycleSpell переключает активное заклинание.
func HandleCycleSpell(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Actor.CycleSpell() {
		return handlers.Rejected("no spell to switch to"), nil
	}
	return handlers.Result{Accepted: true, Msg: ctx.Actor.CurrentSpell()}, nil
}
