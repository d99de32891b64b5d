package inventory

import (
	"github.com/allbikes/dealerdesk/internal/inventory/repository"
	"github.com/allbikes/dealerdesk/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
