package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func NewService(sources ...Source) *service {
	return &service{sources: sources}
}

func (s *service) Sources() []string {
	names := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		names = append(names, src.Name)
	}
	return names
}

// ListResources implements service.InventoryService
// Sources are queried concurrently. A failing source is logged and skipped;
// the call only fails when every source fails or ctx is cancelled.
func (s *service) ListResources(ctx context.Context) ([]model.Resource, error) {
	if len(s.sources) == 0 {
		return nil, ErrNoSources
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)

	results := make([][]model.Resource, len(s.sources))
	var (
		mu     sync.Mutex
		errs   *multierror.Error
		failed int
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			resources, err := src.Service.ListResources(gctx)
			if err != nil {
				// cancellation stops the remaining sources, other errors only skip this one
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn().Err(err).Str("source", src.Name).Msg("inventory source failed")

				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", src.Name, err))
				failed++
				mu.Unlock()
				return nil
			}

			for j := range resources {
				if resources[j].Provider == "" {
					resources[j].Provider = src.Name
				}
			}
			results[i] = resources

			logger.Debug().Str("source", src.Name).Int("resources", len(resources)).Msg("inventory source listed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	if failed == len(s.sources) {
		return nil, fmt.Errorf("failed to list resources: %w", errs.ErrorOrNil())
	}

	var all []model.Resource
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
