package workers

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides background workers for fx dependency injection
var Module = fx.Module("workers",
	fx.Provide(provideScheduler),
)

func provideScheduler(lc fx.Lifecycle, deleter Deleter, logger zerolog.Logger) *Scheduler {
	s := NewScheduler(deleter, logger.With().Str("component", "delete-scheduler").Logger())

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})

	return s
}
