package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/installkit/netinstall/internal/api"
	"github.com/installkit/netinstall/internal/config"
	"github.com/installkit/netinstall/internal/ingest"
	"github.com/installkit/netinstall/internal/model"
	"github.com/installkit/netinstall/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the configured group document and serve it over HTTP",
	Long: `Load the package-group document selected by the module configuration
file (--config) and expose the parsed groups, load status, and metrics
over a read-only HTTP API.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second
	serverIdleTimeout      = 60 * time.Second
)

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "", "Path to module configuration file (YAML format, required)")
	serveCmd.Flags().String("store", "", "Path to the shared key/value store file (in-memory when empty)")

	for _, flag := range []string{"address", "config", "store"} {
		if err := viper.BindPFlag(flag, serveCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}

	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
}

// newKeyValueStore builds the shared key/value collaborator from flags.
func newKeyValueStore(logger logr.Logger) (ingest.KeyValue, error) {
	storePath := viper.GetString("store")
	if storePath == "" {
		return store.NewMemStore(), nil
	}

	fileStore, err := store.NewFileStore(storePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open key/value store: %w", err)
	}
	return fileStore, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)
	address := viper.GetString("address")

	configPath := viper.GetString("config")
	configurationMap, err := config.LoadRawFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("loaded module configuration", "path", configPath)

	kv, err := newKeyValueStore(logger)
	if err != nil {
		return err
	}

	groupModel := model.New()
	loader := ingest.New(groupModel, kv, groupModel)
	defer loader.Close()

	loader.Configure(ctx, configurationMap)

	router := api.NewServer(groupModel,
		api.WithMiddlewares(
			middleware.RequestID,
			middleware.RealIP,
			api.LoggingMiddleware(logger),
		),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "server forced to shutdown")
		return err
	}

	logger.Info("server shutdown complete")
	return nil
}
