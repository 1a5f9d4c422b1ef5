package migration

import (
	"github.com/smallbiznis/atlas/internal/config"
	"github.com/smallbiznis/atlas/internal/country/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// The versioned SQL below targets postgres. Other dialects,
			// used for local runs and tests, derive the schema from the
			// models directly.
			return conn.AutoMigrate(domain.Entities()...)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
