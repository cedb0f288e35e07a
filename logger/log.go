package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Level(verbose bool) zapcore.Level {
	if verbose {
		return zap.DebugLevel
	}

	return zap.InfoLevel
}

// InitLogger replaces zap globals, the returned logger should be synced on exit.
func InitLogger(environment string, verbose bool) *zap.Logger {
	zapConfig := zap.NewProductionConfig()

	zapConfig.Level.SetLevel(Level(verbose))
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConfig.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	logger = logger.WithOptions(zap.AddStacktrace(zapcore.FatalLevel)).With(zap.String("environment", environment))
	zap.ReplaceGlobals(logger)

	return logger
}
