// Package main is the entry point for the netinstall group loader daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/installkit/netinstall/cmd/netinstalld/app"
)

const envPrefix = "NETINSTALL"

// getLogLevel parses the NETINSTALL_LOG_LEVEL environment variable.
// Defaults to info if unset or invalid.
func getLogLevel() zapcore.Level {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	switch strings.ToLower(v.GetString("LOG_LEVEL")) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newLogger() (logr.Logger, func(), error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(getLogLevel())

	zapLogger, err := cfg.Build()
	if err != nil {
		return logr.Logger{}, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	flush := func() {
		_ = zapLogger.Sync()
	}
	return zapr.NewLogger(zapLogger), flush, nil
}

func main() {
	logger, flush, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "netinstalld: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	ctx := logr.NewContext(context.Background(), logger)

	if err := app.NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error(err, "command failed")
		flush()
		os.Exit(1)
	}
}
