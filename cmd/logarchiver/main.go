package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/yurykabanov/logarchiver/internal/configfx"
	"github.com/yurykabanov/logarchiver/internal/domainfx"
	"github.com/yurykabanov/logarchiver/internal/loggerfx"
	"github.com/yurykabanov/logarchiver/pkg/domain"
)

func main() {
	logger := loggerfx.Logger()

	// The whole job runs during construction (see domainfx.RunArchiveJob),
	// so the application never needs to be started.
	app := fx.New(
		fx.NopLogger,

		loggerfx.Module,
		configfx.Module,
		domainfx.Module,
	)

	err := app.Err()
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrUsage) {
		// Usage has already been printed by the flag handling.
		os.Exit(2)
	}

	logger.WithError(err).Error("Run failed")
	os.Exit(1)
}
