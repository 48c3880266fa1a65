package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/gophcal/internal/client/api"
	"github.com/iudanet/gophcal/internal/client/auth"
	"github.com/iudanet/gophcal/internal/client/cli"
	"github.com/iudanet/gophcal/internal/client/events"
	"github.com/iudanet/gophcal/internal/client/iocli"
	"github.com/iudanet/gophcal/internal/client/storage/boltdb"
	"github.com/iudanet/gophcal/internal/config"
	"github.com/iudanet/gophcal/internal/kakao"
	"github.com/iudanet/gophcal/internal/metrics"
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

	root, app := newRootCmd()
	err := root.ExecuteContext(ctx)
	app.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, *application) {
	v := viper.New()
	var cfgFile string
	app := &application{}

	cmd := &cobra.Command{
		Use:           "gophcal",
		Short:         "Calendar client: sign in and manage your events from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./client.yaml or $XDG_CONFIG_HOME/gophcal/client.yaml)")
	cmd.PersistentFlags().String("server", "http://localhost:8080", "server URL")
	cmd.PersistentFlags().String("data-dir", "", "directory for local credentials")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("metrics-addr", "", "serve event cache metrics on this address (e.g. 127.0.0.1:9464)")

	_ = v.BindPFlag("server_url", cmd.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("data_dir", cmd.PersistentFlags().Lookup("data-dir"))
	_ = v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("metrics_addr", cmd.PersistentFlags().Lookup("metrics-addr"))

	factory := func(ctx context.Context) (*cli.Cli, error) {
		return app.open(ctx, v, cfgFile)
	}
	cmd.AddCommand(cli.Commands(factory)...)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	})

	return cmd, app
}

// application ресурсы, открываемые первой командой и закрываемые после нее
type application struct {
	cli      *cli.Cli
	storage  *boltdb.Storage
	manager  *auth.Manager
	cache    *events.Cache
	exporter *metrics.Exporter
	logger   *slog.Logger
}

func (a *application) open(ctx context.Context, v *viper.Viper, cfgFile string) (*cli.Cli, error) {
	if a.cli != nil {
		return a.cli, nil
	}

	cfg, err := config.LoadClient(v, cfgFile)
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(os.Stderr, cfg.Log)
	a.logger = logger

	// 1. Локальное зашифрованное хранилище
	secret, err := boltdb.LoadDeviceSecret(cfg.DeviceSecretPath())
	if err != nil {
		return nil, err
	}
	store, err := boltdb.New(ctx, cfg.DatabasePath(), secret)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}
	a.storage = store

	// 2. Провайдеры и менеджер сессий
	io := iocli.NewStdio()
	client := api.NewClient(cfg.ServerURL, api.WithUserAgent("gophcal/"+Version))

	var kakaoSDK auth.KakaoSDK
	if cfg.Kakao.ClientID != "" {
		kakaoSDK = auth.NewOAuthKakaoSDK(
			kakao.NewConfig(cfg.Kakao.ClientID, cfg.Kakao.ClientSecret, cfg.Kakao.RedirectURL),
			kakao.NewClient(cfg.Kakao.APIURL, &http.Client{Timeout: cfg.Cache.WriteTimeout}),
			cli.KakaoCodePrompter(io),
		)
	}

	a.manager = auth.NewManager(
		auth.NewEmailPasswordProvider(client, store, logger),
		// нативного Sign in with Apple в терминале нет
		auth.NewAppleProvider(nil, store, logger),
		auth.NewKakaoProvider(kakaoSDK, client, store, logger),
		store,
		logger,
		auth.Config{
			TokenRefreshInterval: cfg.Session.TokenRefreshInterval,
			PollInterval:         cfg.Session.PollInterval,
		},
	)

	// 3. Метрики кэша, если запрошен экспорт
	var recorder metrics.CacheRecorder = metrics.Nop{}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewCollector(reg)
		exporter, err := metrics.Listen(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return nil, err
		}
		a.exporter = exporter
	}

	// 4. Кэш событий
	a.cache = events.NewCache(
		events.NewHTTPStore(client, a.manager, logger),
		a.manager,
		recorder,
		logger,
		events.Config{
			BackgroundTimeout: cfg.Cache.BackgroundTimeout,
			WriteTimeout:      cfg.Cache.WriteTimeout,
			PreloadRadius:     cfg.Cache.PreloadRadius,
		},
	)

	a.cli = cli.New(io, a.manager, a.cache, logger, cli.Options{
		PreloadRadius: cfg.Cache.PreloadRadius,
		WatchInterval: cfg.Cache.WatchInterval,
	})
	return a.cli, nil
}

func (a *application) close() {
	if a.cache != nil {
		a.cache.Close()
	}
	if a.manager != nil {
		a.manager.Close()
	}
	if a.exporter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.exporter.Shutdown(ctx); err != nil && a.logger != nil {
			a.logger.Error("Failed to stop metrics exporter", "error", err)
		}
		cancel()
	}
	if a.storage != nil {
		if err := a.storage.Close(); err != nil && a.logger != nil {
			a.logger.Error("Failed to close local storage", "error", err)
		}
	}
}

func printVersion(cmd *cobra.Command) {
	cmd.Printf("gophcal client\n")
	cmd.Printf("Version:    %s\n", Version)
	cmd.Printf("Build Date: %s\n", BuildDate)
	cmd.Printf("Git Commit: %s\n", GitCommit)
}
