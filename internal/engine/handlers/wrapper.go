package handlers

import (
	"fmt"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовым аргументом T
type TypedHandlerFunc[T any] func(ctx Context, arg T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (PARRY, WAIT)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// AbilityArg - аргумент USE_ABILITY.
type AbilityArg struct {
	Index  int
	Target domain.Vec2
}

// WithArg берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя валидацию команды и извлечение аргумента.
func WithArg[T any](extract func(domain.Command) T, handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, cmd domain.Command) (Result, error) {
		if err := validate(ctx, cmd); err != nil {
			return Result{}, err
		}
		return handler(ctx, extract(cmd))
	}
}

// WithEmptyArg - обертка для команд без данных
func WithEmptyArg(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd domain.Command) (Result, error) {
		if err := validate(ctx, cmd); err != nil {
			return Result{}, err
		}
		return handler(ctx)
	}
}

func validate(ctx Context, cmd domain.Command) error {
	if ctx.Actor == nil {
		return fmt.Errorf("%w: actor %s not found", domain.ErrInvalidCommand, cmd.Actor)
	}
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Извлекатели аргументов.

func Direction(cmd domain.Command) domain.Vec2 { return cmd.Dir }

func Target(cmd domain.Command) domain.Vec2 { return cmd.Target }

func Ability(cmd domain.Command) AbilityArg {
	return AbilityArg{Index: cmd.Index, Target: cmd.Target}
}

func ItemID(cmd domain.Command) string { return cmd.ItemID }

func SkillID(cmd domain.Command) string { return cmd.SkillID }
