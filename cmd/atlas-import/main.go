// atlas-import runs one full-replace import of the country catalog and
// exits: zero on success, non-zero when the fetch or the batch fails.
package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/atlas/internal/config"
	"github.com/smallbiznis/atlas/internal/country"
	"github.com/smallbiznis/atlas/internal/importer"
	"github.com/smallbiznis/atlas/internal/logger"
	"github.com/smallbiznis/atlas/internal/migration"
	"github.com/smallbiznis/atlas/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		country.Module,
		importer.Module,

		fx.Invoke(runImport),
	)
	app.Run()
}

func runImport(lc fx.Lifecycle, shutdowner fx.Shutdowner, log *zap.Logger, imp *importer.Importer) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := imp.Run(context.Background()); err != nil {
					log.Error("import failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
