package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/service"
)

// Launch opens the store, serves the API until ctx is cancelled, then closes the store.
func Launch(ctx context.Context, log *logrus.Logger, cfg *config.Config) error {
	lineageService, err := service.NewLineageService(log, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if closer, ok := lineageService.Store.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				log.Warnf("Failed to close store: %v", err)
			}
		}
	}()

	if err := launchServer(ctx, log, cfg, lineageService); err != nil {
		return fmt.Errorf("lineage server stopped: %w", err)
	}

	return nil
}
