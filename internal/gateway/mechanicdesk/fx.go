package mechanicdesk

import (
	"github.com/allbikes/dealerdesk/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("gateway.mechanicdesk",
	fx.Provide(func(cfg config.Config) *Client {
		return NewClient(cfg.MechanicDeskBaseURL, cfg.MechanicDeskToken)
	}),
)
