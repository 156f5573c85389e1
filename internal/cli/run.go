package cli

import (
	"fmt"
	"io"

	"github.com/elemgen-labs/elemgen/internal/config"
	"github.com/elemgen-labs/elemgen/internal/dispatch"
	"github.com/elemgen-labs/elemgen/internal/element"
	"github.com/elemgen-labs/elemgen/internal/help"
	"github.com/elemgen-labs/elemgen/internal/logging"
	"go.uber.org/zap"
)

func run(mode dispatch.Mode, stdout, stderr io.Writer, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return &dispatch.ConfigError{Err: err}
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:   settings.LogLevel,
		Console: stderr,
		File:    settings.LogFile,
	})
	if err != nil {
		return &dispatch.ConfigError{Err: err}
	}
	defer closeLog()

	logger.Debug("starting",
		zap.String("version", buildVersion),
		zap.String("commit", buildCommit),
		zap.String("built", buildDate),
		zap.Strings("args", args),
	)

	reg, err := loadRegistry(settings)
	if err != nil {
		return &dispatch.ConfigError{Err: err}
	}
	logger.Debug("element registry loaded",
		zap.String("version", reg.Version()),
		zap.Int("elements", reg.Len()),
		zap.String("source", registrySource(settings)),
	)

	inv, err := dispatch.Parse(mode, args, reg)
	if err != nil {
		logger.Debug("arguments rejected", zap.Error(err))
		return err
	}

	switch inv.Action {
	case dispatch.ActionHelp:
		return help.Render(stdout, help.ForMode(mode), reg)
	case dispatch.ActionGenerate:
		return generate(logger, inv.Request)
	default:
		return fmt.Errorf("unhandled action %s", inv.Action)
	}
}

func loadRegistry(settings *config.Settings) (*element.Registry, error) {
	if settings.ElementsFile != "" {
		return element.Load(settings.ElementsFile)
	}
	return element.Default()
}

func registrySource(settings *config.Settings) string {
	if settings.ElementsFile != "" {
		return settings.ElementsFile
	}
	return "embedded"
}
