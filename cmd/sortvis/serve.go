package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"sortvis"
	httpAdapter "sortvis/pkg/adapters/http"
	"sortvis/pkg/adapters/memory"
	redisAdapter "sortvis/pkg/adapters/redis"
	"sortvis/pkg/observability"
	"sortvis/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the engine in server mode, exposing runs over a JSON API with
an SSE autoplay stream and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics := observability.NewMetrics(reg)

		var store ports.RunStore = memory.NewStore()
		if cfg.Redis.Address != "" {
			rs := redisAdapter.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(cfg.Redis.TTL))
			defer rs.Close()
			store = rs
			logger.Info("using redis run store", "address", cfg.Redis.Address)
		}

		factory := func(algorithm string, length int) (httpAdapter.Engine, error) {
			drvCfg := cfg.Driver()
			if length > 0 {
				drvCfg.Length = length
			}
			opts := []sortvis.Option{
				sortvis.WithConfig(drvCfg),
				sortvis.WithLogger(logger),
				sortvis.WithHooks(metrics.Hooks()),
			}
			if algorithm == "" {
				algorithm = cfg.Algorithm
			}
			if algorithm != "" {
				opts = append(opts, sortvis.WithAlgorithm(algorithm))
			}
			return sortvis.New(opts...)
		}

		server := httpAdapter.NewServer(factory,
			httpAdapter.WithStore(store),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithIntervals(cfg.Playback.Slow, cfg.Playback.Fast),
		)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: server.Handler(reg),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)
		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
