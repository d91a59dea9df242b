package bootstrap

import (
	"context"

	"salon-site/internal/infra/db"
	"salon-site/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB builds the store handle. A missing DATABASE_URL is not an
// error here: the handle carries the unconfigured state and every
// dependent operation reports it as a configuration error.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*db.Handle, error) {
	handle, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return handle, nil
}
