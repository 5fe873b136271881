package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Dash", ActionDash},
		{"use_ability", ActionUseAbility},
		{"LEARN_SKILL", ActionLearnSkill},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionParry, "PARRY"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestCommand_Validate(t *testing.T) {
	actor := types.PackEntityID(1, 1, 1, 1)
	nan := math.NaN()

	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"Move ok", Command{Actor: actor, Action: ActionMove, Dir: Vec2{X: 1}}, false},
		{"Move without direction is a stop", Command{Actor: actor, Action: ActionMove}, false},
		{"Missing actor", Command{Action: ActionMove}, true},
		{"Dash zero direction", Command{Actor: actor, Action: ActionDash}, true},
		{"Teleport NaN", Command{Actor: actor, Action: ActionTeleport, Dir: Vec2{X: nan, Y: 1}}, true},
		{"Attack ok", Command{Actor: actor, Action: ActionAttack, Target: Vec2{X: 3, Y: 4}}, false},
		{"Ability negative index", Command{Actor: actor, Action: ActionUseAbility, Index: -1}, true},
		{"Equip without item", Command{Actor: actor, Action: ActionEquip}, true},
		{"Unequip ok", Command{Actor: actor, Action: ActionUnequip, Slot: enums.SlotBoots}, false},
		{"Allocate unknown stat", Command{Actor: actor, Action: ActionAllocateStat}, true},
		{"Parry ok", Command{Actor: actor, Action: ActionParry}, false},
		{"Unknown action", Command{Actor: actor, Action: ActionUnknown}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("error %v must wrap ErrInvalidCommand", err)
			}
		})
	}
}
