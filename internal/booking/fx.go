package booking

import (
	"github.com/allbikes/dealerdesk/internal/booking/domain"
	"github.com/allbikes/dealerdesk/internal/booking/repository"
	"github.com/allbikes/dealerdesk/internal/booking/service"
	"github.com/allbikes/dealerdesk/internal/gateway/mechanicdesk"
	"go.uber.org/fx"
)

var Module = fx.Module("booking.service",
	fx.Provide(repository.Provide),
	fx.Provide(func(client *mechanicdesk.Client) domain.Gateway { return client }),
	fx.Provide(service.New),
)
