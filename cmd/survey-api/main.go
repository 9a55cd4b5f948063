package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/analysis"
	"github.com/feral-file/ff-survey/internal/api/middleware"
	"github.com/feral-file/ff-survey/internal/api/server"
	"github.com/feral-file/ff-survey/internal/api/shared/executor"
	"github.com/feral-file/ff-survey/internal/config"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/localpoll"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/messaging"
	"github.com/feral-file/ff-survey/internal/providers/ethereum"
	"github.com/feral-file/ff-survey/internal/providers/gemini"
	"github.com/feral-file/ff-survey/internal/providers/jetstream"
	"github.com/feral-file/ff-survey/internal/reader"
	"github.com/feral-file/ff-survey/internal/refresher"
	"github.com/feral-file/ff-survey/internal/store"
	"github.com/feral-file/ff-survey/internal/tokenmeta"
	"github.com/feral-file/ff-survey/internal/vote"
	"github.com/feral-file/ff-survey/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "survey-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Survey API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Dial every configured chain
	dialer := adapter.NewEthClientDialer()
	ethClients := make(map[uint64]adapter.EthClient, len(cfg.Chains))
	surveyClients := make(map[domain.Chain]ethereum.SurveyClient, len(cfg.Chains))
	for _, chain := range cfg.Chains {
		chainID, err := chain.Chain.ID()
		if err != nil {
			logger.FatalCtx(ctx, "Invalid chain", zap.Error(err))
		}

		ethClient, err := dialer.Dial(ctx, chain.RPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to dial chain RPC", zap.Error(err), zap.String("chain", string(chain.Chain)))
		}
		ethClients[chainID] = ethClient
		surveyClients[chain.Chain] = ethereum.NewSurveyClient(chain.Chain, ethClient)
		logger.InfoCtx(ctx, "Connected to chain RPC", zap.String("chain", string(chain.Chain)))
	}
	defer func() {
		for _, c := range surveyClients {
			c.Close()
		}
	}()

	// Event publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			StreamName:     cfg.NATS.StreamName,
			StreamMaxAge:   cfg.NATS.StreamMaxAge,
		}, adapter.NewNatsDialer(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, poll events are not published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Poll aggregation
	pollReader := reader.NewReader(surveyClients, tokenmeta.NewResolver(), clock)
	agg := aggregator.NewAggregator(aggregator.Config{
		Contracts:      cfg.Contracts,
		MaxConcurrency: cfg.Aggregator.MaxConcurrency,
	}, pollReader, aggregator.NewPollStore(), clock)
	defer agg.Close()

	if _, err := agg.Refresh(ctx); err != nil {
		// the API stays up and serves a 502 on refresh until a contract can be read
		logger.ErrorCtx(ctx, fmt.Errorf("initial poll aggregation failed: %w", err))
	}

	// Vote submission
	var submitter vote.Submitter
	if cfg.Vote.PrivateKey != "" {
		voteChainID, _ := cfg.Vote.Chain.ID()
		w, err := wallet.NewLocalWallet(cfg.Vote.PrivateKey, ethClients, voteChainID)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create wallet", zap.Error(err))
		}

		submitter, err = vote.NewSubmitter(vote.Config{
			Chain:               cfg.Vote.Chain,
			ReceiptPollInterval: cfg.Vote.ReceiptPollInterval,
			StatusTTL:           cfg.Vote.StatusTTL,
		}, w, agg, publisher, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create vote submitter", zap.Error(err))
		}
		defer submitter.Close()
		logger.InfoCtx(ctx, "Vote submission enabled",
			zap.String("chain", string(cfg.Vote.Chain)),
			zap.String("address", w.Address()))
	} else {
		logger.WarnCtx(ctx, "Vote private key not configured, vote submission is disabled")
	}

	// AI analysis with optional persistent cache
	var analysisSvc analysis.Service
	if cfg.AI.APIKey != "" {
		var dataStore store.Store
		if dsn := cfg.Database.DSN(); dsn != "" {
			db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err != nil {
				logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
			}
			if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
				logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
			}
			dataStore = store.NewPGStore(db)
			logger.InfoCtx(ctx, "Connected to database", zap.Int("max_open_conns", cfg.Database.MaxOpenConns))
		} else {
			logger.WarnCtx(ctx, "Database not configured, poll analyses are not cached")
		}

		aiClient := gemini.NewClient(gemini.Config{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
		}, adapter.NewHTTPClient(cfg.AI.Timeout), jsonAdapter)
		analysisSvc = analysis.NewService(analysis.Config{Model: cfg.AI.Model},
			agg, aiClient, dataStore, adapter.NewCanonicalizer(jsonAdapter), jsonAdapter)
	} else {
		logger.WarnCtx(ctx, "AI API key not configured, analysis and suggestions are disabled")
	}

	// Background refresh
	var bgRefresher refresher.Refresher
	if cfg.Refresher.Enabled {
		bgRefresher = refresher.NewRefresher(cfg.Refresher.Interval, agg, publisher, clock)
		go func() {
			if err := bgRefresher.Start(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "refresher"))
			}
		}()
	}

	exec := executor.NewExecutor(agg, submitter, analysisSvc, localpoll.NewRegistry(clock, localpoll.SamplePolls(clock.Now())...))
	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if bgRefresher != nil {
		if err := bgRefresher.Stop(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			logger.ErrorCtx(shutdownCtx, err, zap.String("component", "refresher"))
		}
	}
	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, fmt.Errorf("server forced to shutdown: %w", err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Survey API server stopped")
}
