package importer

import (
	"github.com/smallbiznis/atlas/internal/importer/source"
	"go.uber.org/fx"
)

var Module = fx.Module("importer",
	fx.Provide(source.NewClient),
	fx.Provide(New),
)
