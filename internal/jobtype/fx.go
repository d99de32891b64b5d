package jobtype

import (
	"github.com/allbikes/dealerdesk/internal/jobtype/repository"
	"github.com/allbikes/dealerdesk/internal/jobtype/service"
	"go.uber.org/fx"
)

var Module = fx.Module("jobtype.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
