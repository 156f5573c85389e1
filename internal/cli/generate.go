package cli

import (
	"github.com/elemgen-labs/elemgen/internal/dispatch"
	"go.uber.org/zap"
)

// generate accepts a validated request. File generation is not part of
// this tool yet, so the request is only logged.
func generate(logger *zap.Logger, req *dispatch.Request) error {
	if req.HasConflictingOptions() {
		logger.Warn("both test options given; the last one wins",
			zap.Strings("options", req.Options),
			zap.Bool("with_test", req.WithTest),
		)
	}

	logger.Debug("generation request resolved",
		zap.String("element", req.Element.Name),
		zap.String("alias", req.Element.Alias),
		zap.String("name", req.Name),
		zap.Bool("with_test", req.WithTest),
		zap.Bool("default_with_test", req.Element.DefaultWithTest),
		zap.Strings("options", req.Options),
	)
	return nil
}
