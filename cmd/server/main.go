package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/iudanet/gophcal/internal/config"
	"github.com/iudanet/gophcal/internal/kakao"
	"github.com/iudanet/gophcal/internal/metrics"
	"github.com/iudanet/gophcal/internal/server"
	"github.com/iudanet/gophcal/internal/server/jwt"
	"github.com/iudanet/gophcal/internal/server/middleware"
	"github.com/iudanet/gophcal/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "gophcal-server",
		Short:         "Calendar backend: accounts, Kakao custom tokens and per-user events",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./server.yaml or $XDG_CONFIG_HOME/gophcal/server.yaml)")
	cmd.Flags().String("addr", ":8080", "HTTP listen address")
	cmd.Flags().String("db", "gophcal.db", "SQLite database path")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("database.path", cmd.Flags().Lookup("db"))
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	})

	return cmd
}

func run(ctx context.Context, cfg *config.Server) error {
	logger := config.NewLogger(os.Stderr, cfg.Log)
	logger.Info("Starting gophcal server", "version", Version, "commit", GitCommit)

	// 1. БД и миграции
	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	// 2. Метрики
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// 3. Лимиты запросов (в конфиге запросы в минуту)
	general := perMinute(middleware.DefaultRateLimiterConfig(), cfg.RateLimit.PerMinute)
	authCfg := perMinute(middleware.AuthRateLimiterConfig(), cfg.RateLimit.AuthPerMinute)

	limiter := middleware.NewRateLimiter(general, logger)
	defer limiter.Stop()
	authLimiter := middleware.NewRateLimiter(authCfg, logger)
	defer authLimiter.Stop()

	// 4. Маршруты
	router := server.NewRouter(&server.RouterDeps{
		Logger: logger,
		Users:  store,
		Tokens: store,
		Events: store,
		DB:     store,
		JWT: jwt.NewService(jwt.Config{
			Secret:          []byte(cfg.JWT.Secret),
			AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
			RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
			CustomTokenTTL:  cfg.JWT.CustomTokenTTL,
		}),
		Kakao:           kakao.NewClient(cfg.Kakao.APIURL, &http.Client{Timeout: cfg.Server.WriteTimeout}),
		RateLimiter:     limiter,
		AuthRateLimiter: authLimiter,
		Metrics:         collector,
		Gatherer:        reg,
		Version:         Version,
	})

	// 5. HTTP сервер до SIGINT/SIGTERM
	srv := server.New(server.Config{
		Addr:                 cfg.Server.Addr,
		ReadTimeout:          cfg.Server.ReadTimeout,
		WriteTimeout:         cfg.Server.WriteTimeout,
		ShutdownTimeout:      cfg.Server.ShutdownTimeout,
		TokenCleanupInterval: cfg.Cleanup,
	}, router, store, logger)

	return srv.Run(ctx)
}

// perMinute переводит лимит "запросов в минуту" в token bucket
func perMinute(cfg middleware.RateLimiterConfig, n int) middleware.RateLimiterConfig {
	if n <= 0 {
		return cfg
	}
	cfg.Rate = rate.Limit(float64(n) / 60)
	cfg.Burst = n
	return cfg
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "gophcal server\n")
	fmt.Fprintf(out, "Version:    %s\n", Version)
	fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
}
