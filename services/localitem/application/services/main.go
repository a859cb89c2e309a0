package services

import (
	"github.com/ghuser/locallister/pkg/app"
	"github.com/ghuser/locallister/services/localitem/infrastructure/persistence/file"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all localitem application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	store := file.NewItemStore(a.ItemStorePath)
	return &Services{
		Item: NewItemService(store, a.EventBus, a.Logger),
	}
}
