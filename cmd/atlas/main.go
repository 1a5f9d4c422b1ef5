package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/atlas/internal/config"
	"github.com/smallbiznis/atlas/internal/country"
	"github.com/smallbiznis/atlas/internal/logger"
	"github.com/smallbiznis/atlas/internal/migration"
	"github.com/smallbiznis/atlas/internal/server"
	"github.com/smallbiznis/atlas/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		country.Module,
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
