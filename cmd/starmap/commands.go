package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/starmap-dev/starmap/db"
	"github.com/starmap-dev/starmap/internal/config"
	"github.com/starmap-dev/starmap/internal/router"
	"github.com/starmap-dev/starmap/internal/services"
	"github.com/starmap-dev/starmap/internal/types"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfg config.Config

	root := &cobra.Command{
		Use:           "starmap",
		Short:         "Scientists, planets and the missions between them, over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}

			if err := bindFlags(v, cmd); err != nil {
				return err
			}

			cfg = config.Load(v)

			return config.SetupLogging(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		},
	}

	root.PersistentFlags().String("db-uri", "", "database URI (sqlite://, postgres://, mysql://)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (console, json)")
	root.PersistentFlags().String("port", "", "port for the HTTP API to listen on")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Replace the database contents with sample data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openDatabase(cfg); err != nil {
				return err
			}
			return services.Seed(cmd.Context(), db.DB)
		},
	}

	root.AddCommand(serve, seed)
	root.RunE = serve.RunE

	return root
}

var flagKeys = map[string]string{
	"db-uri":     config.KeyDatabaseURI,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"port":       config.KeyPort,
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	return nil
}

func openDatabase(cfg config.Config) error {
	if err := db.ConnectDatabase(cfg.DatabaseURI); err != nil {
		return err
	}

	return db.MigrateDatabase()
}

func runServer(ctx context.Context, cfg config.Config) error {
	if err := openDatabase(cfg); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	r := router.NewRouter(types.AllowedOrigins(cfg.ClientURL, cfg.AllowedOrigins))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starmap listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
