package handlers

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
)

// Context содержит всё, что нужно хендлеру для исполнения одной команды.
// Хендлер НЕ пишет в логи сам: отказы и ошибки логирует инстанс.
type Context struct {
	Actor    *domain.Actor
	Registry *registry.Registry

	// Spawn передаёт описание атаки резолверу боя.
	Spawn func(spec domain.AttackSpec) (types.EntityID, bool)
	// Report добавляет результат (например, лечение) в отчёт кадра.
	Report func(res systems.CombatResult)
}

// Result - результат исполнения команды.
// Accepted == false означает отказ по правилам игры (перезарядка, ресурсы),
// это не ошибка.
type Result struct {
	Accepted bool
	Msg      string
	Spawned  types.EntityID
}

// HandlerFunc - единая сигнатура для всех обработчиков
type HandlerFunc func(ctx Context, cmd domain.Command) (Result, error)

// Accepted - команда исполнена, сообщать нечего.
func Accepted() Result {
	return Result{Accepted: true}
}

// Rejected - команда отклонена правилами, состояние не изменилось.
func Rejected(msg string) Result {
	return Result{Msg: msg}
}
