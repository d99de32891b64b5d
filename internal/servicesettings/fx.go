package servicesettings

import (
	"github.com/allbikes/dealerdesk/internal/servicesettings/repository"
	"github.com/allbikes/dealerdesk/internal/servicesettings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("servicesettings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
