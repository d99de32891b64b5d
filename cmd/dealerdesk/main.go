package main

import (
	"github.com/allbikes/dealerdesk/internal/config"
	"github.com/allbikes/dealerdesk/internal/migration"
	"github.com/allbikes/dealerdesk/internal/observability"
	"github.com/allbikes/dealerdesk/internal/server"
	"github.com/allbikes/dealerdesk/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
