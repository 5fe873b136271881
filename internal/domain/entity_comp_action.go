package domain

import (
	"context"

	"github.com/looplab/fsm"
)

// Состояния блокировки действий актёра.
const (
	ActionStateIdle      = "idle"
	ActionStateAttacking = "attacking"
	ActionStateCasting   = "casting"
	ActionStateDead      = "dead"
)

// События переходов.
const (
	actionEventAttack = "attack"
	actionEventCast   = "cast"
	actionEventFinish = "finish"
	actionEventDie    = "die"
)

// ActionState — машина состояний блокировки действий:
// idle -> attacking|casting -> idle, любое -> dead (терминальное).
type ActionState struct {
	machine *fsm.FSM
	// lock — сколько секунд осталось до возврата в idle.
	lock float64
}

func NewActionState() *ActionState {
	return &ActionState{
		machine: fsm.NewFSM(
			ActionStateIdle,
			fsm.Events{
				{Name: actionEventAttack, Src: []string{ActionStateIdle}, Dst: ActionStateAttacking},
				{Name: actionEventCast, Src: []string{ActionStateIdle}, Dst: ActionStateCasting},
				{Name: actionEventFinish, Src: []string{ActionStateAttacking, ActionStateCasting}, Dst: ActionStateIdle},
				{Name: actionEventDie, Src: []string{ActionStateIdle, ActionStateAttacking, ActionStateCasting}, Dst: ActionStateDead},
			},
			fsm.Callbacks{},
		),
	}
}

// Current возвращает имя текущего состояния.
func (s *ActionState) Current() string {
	return s.machine.Current()
}

func (s *ActionState) Is(state string) bool {
	return s.machine.Is(state)
}

// Remaining возвращает оставшееся время блокировки.
func (s *ActionState) Remaining() float64 {
	return s.lock
}

// BeginAttack переводит в attacking на duration секунд.
func (s *ActionState) BeginAttack(duration float64) bool {
	return s.begin(actionEventAttack, duration)
}

// BeginCast переводит в casting на duration секунд. Мгновенные касты не блокируют.
func (s *ActionState) BeginCast(duration float64) bool {
	if !s.machine.Can(actionEventCast) {
		return false
	}
	if duration <= 0 {
		return true
	}
	return s.begin(actionEventCast, duration)
}

func (s *ActionState) begin(event string, duration float64) bool {
	if err := s.machine.Event(context.Background(), event); err != nil {
		return false
	}
	s.lock = duration
	return true
}

// Tick отсчитывает блокировку и возвращает в idle по её окончании.
func (s *ActionState) Tick(dt float64) {
	if !s.machine.Is(ActionStateAttacking) && !s.machine.Is(ActionStateCasting) {
		return
	}
	s.lock -= dt
	if s.lock <= 0 {
		s.lock = 0
		_ = s.machine.Event(context.Background(), actionEventFinish)
	}
}

// Kill переводит в dead. Повторный вызов ничего не делает и возвращает false.
func (s *ActionState) Kill() bool {
	if err := s.machine.Event(context.Background(), actionEventDie); err != nil {
		return false
	}
	s.lock = 0
	return true
}
