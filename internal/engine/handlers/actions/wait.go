package actions

import "github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Accepted(), nil
}
