package engine

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// InputSource — опрос устройства ввода, который предоставляет хост.
type InputSource interface {
	IsActionPressed(action string) bool
	CursorWorldPosition() domain.Vec2
}

// Имена действий ввода.
const (
	InputMoveUp     = "move_up"
	InputMoveDown   = "move_down"
	InputMoveLeft   = "move_left"
	InputMoveRight  = "move_right"
	InputAttack     = "attack"
	InputDash       = "dash"
	InputTeleport   = "teleport"
	InputParry      = "parry"
	InputCycleSpell = "cycle_spell"
)

// AbilityInputs — действия ввода для слотов способностей, по порядку.
var AbilityInputs = []string{"ability_1", "ability_2", "ability_3", "ability_4"}

// PollCommands переводит состояние ввода в команды актёра на этот кадр.
//
// Рывок и телепорт идут по направлению движения, а без него в сторону курсора.
// Атака и способности целятся в курсор.
func PollCommands(actor *domain.Actor, src InputSource) []domain.Command {
	if actor == nil || actor.IsDead() {
		return nil
	}

	var cmds []domain.Command
	cursor := src.CursorWorldPosition()

	move := pollDirection(src)
	if !move.IsZero() {
		cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionMove, Dir: move})
	}

	dodge := move
	if dodge.IsZero() && cursor.IsFinite() {
		dodge = cursor.Sub(actor.Center()).Normalize()
	}
	if dodge.IsZero() || !dodge.IsFinite() {
		dodge = actor.Facing
	}

	if src.IsActionPressed(InputDash) {
		cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionDash, Dir: dodge})
	}
	if src.IsActionPressed(InputTeleport) {
		cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionTeleport, Dir: dodge})
	}
	if src.IsActionPressed(InputParry) {
		cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionParry})
	}
	if src.IsActionPressed(InputCycleSpell) {
		cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionCycleSpell})
	}
	if src.IsActionPressed(InputAttack) {
		cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionAttack, Target: cursor})
	}
	for idx, name := range AbilityInputs {
		if src.IsActionPressed(name) {
			cmds = append(cmds, domain.Command{Actor: actor.ID, Action: domain.ActionUseAbility, Index: idx, Target: cursor})
		}
	}
	return cmds
}

func pollDirection(src InputSource) domain.Vec2 {
	var dir domain.Vec2
	if src.IsActionPressed(InputMoveUp) {
		dir.Y--
	}
	if src.IsActionPressed(InputMoveDown) {
		dir.Y++
	}
	if src.IsActionPressed(InputMoveLeft) {
		dir.X--
	}
	if src.IsActionPressed(InputMoveRight) {
		dir.X++
	}
	return dir.Normalize()
}
