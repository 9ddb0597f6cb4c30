package app

import (
	"context"
	"strings"

	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/logging"
)

// buildExplorer returns the explorer to monitor and a function releasing its
// resources. The store at Config.DBPath is seeded with the sample papers when
// it is empty or when seeding is forced.
func (a *Application) buildExplorer(ctx context.Context) (explorer.Explorer, func(), error) {
	var ex explorer.Explorer = a.Explorer
	closeFn := func() {}

	if ex == nil {
		store, err := explorer.OpenStore(a.Config.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() {
			if err := store.Close(); err != nil {
				a.Logger.Error("cannot close paper store", err)
			}
		}

		count, err := store.Count(ctx)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		if count == 0 || a.Config.Seed {
			n, err := explorer.SeedSamples(ctx, store)
			if err != nil {
				closeFn()
				return nil, nil, apperrors.WrapError(err, "seed sample papers")
			}
			a.Logger.Info("seeded sample papers", logging.Int("count", n), logging.String("db", a.Config.DBPath))
		}
		ex = explorer.NewLibrary(store)
	}

	if len(a.Config.Faults) > 0 {
		faulty, err := explorer.NewFaulty(ex, a.Config.Faults)
		if err != nil {
			closeFn()
			return nil, nil, apperrors.ConfigError{Message: err.Error()}
		}
		a.Logger.Info("fault injection enabled", logging.String("faults", strings.Join(faulty.Faults(), ",")))
		ex = faulty
	}

	return explorer.NewTimed(ex, a.Logger), closeFn, nil
}
