package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "fulfillment/internal/app"
	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/healthcheck_head"
	"fulfillment/internal/handlers/rest/order_accept_post"
	"fulfillment/internal/handlers/rest/order_cancel_post"
	"fulfillment/internal/handlers/rest/order_get"
	"fulfillment/internal/handlers/rest/order_post"
	"fulfillment/internal/handlers/rest/order_refund_post"
	"fulfillment/internal/handlers/rest/order_release_post"
	"fulfillment/internal/handlers/rest/order_status_post"
	"fulfillment/internal/handlers/rest/orders_claimable_get"
	"fulfillment/internal/handlers/rest/payment_get"
	"fulfillment/internal/handlers/rest/payment_post"
	"fulfillment/internal/handlers/rest/payment_reconcile_post"
	"fulfillment/internal/handlers/rest/payout_post"
	"fulfillment/internal/handlers/rest/payout_reject_post"
	"fulfillment/internal/handlers/rest/payout_transfer_post"
	"fulfillment/internal/handlers/rest/ping_get"
	"fulfillment/internal/handlers/rest/routes_optimize_post"
	"fulfillment/internal/handlers/rest/shipper_get"
	"fulfillment/internal/handlers/rest/shipper_me_put"
	"fulfillment/internal/handlers/rest/shipper_post"
	"fulfillment/internal/handlers/rest/transfer_webhook_post"
	"fulfillment/internal/handlers/rest/wallet_adjustment_post"
	"fulfillment/internal/handlers/rest/wallet_get"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/dotenv"
	"fulfillment/internal/pkg/grpcclient"
	"fulfillment/internal/pkg/kafka"
	metrics_system "fulfillment/internal/pkg/metrics"
	"fulfillment/internal/pkg/middlewares/auth"
	"fulfillment/internal/pkg/middlewares/graceful_shutdown"
	"fulfillment/internal/pkg/middlewares/metrics"
	"fulfillment/internal/pkg/middlewares/rate_limiter"
	"fulfillment/internal/pkg/middlewares/timeout"
	"fulfillment/internal/pkg/postgres"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/logger/zap_adapter"
	"fulfillment/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const rateLimiterIdleTTL = 10 * time.Minute

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	zapLogger, err := zap_adapter.NewZapAdapter(logLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fulfillment application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.RouteService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// фоновые задачи останавливаются по отмене ctx, вместе с сигналом
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval, pool)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()
	runLog.Info("background tasks stopped")

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewBuckets(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS), rateLimiterIdleTTL),
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	webhookOnly := auth.WebhookKey(log, cfg.Auth.WebhookAPIKey)
	router.Handle("/webhooks/transfers", webhookOnly(transfer_webhook_post.New(log, app.ServicePayment))).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware(log, auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)))

	operatorOnly := auth.RequireRole(log, entities.RoleOperator)
	shipperOnly := auth.RequireRole(log, entities.RoleShipper)

	// /orders/claimable до /orders/{id}, иначе его перехватит шаблон
	api.Handle("/orders/claimable", shipperOnly(orders_claimable_get.New(log, app.ServiceAssignment))).Methods("GET")
	api.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}/status", order_status_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/accept", shipperOnly(order_accept_post.New(log, app.ServiceAssignment))).Methods("POST")
	api.Handle("/orders/{id}/release", shipperOnly(order_release_post.New(log, app.ServiceAssignment))).Methods("POST")

	api.Handle("/orders/{id}/payment", payment_post.New(log, app.ServicePayment)).Methods("POST")
	api.Handle("/orders/{id}/payment", payment_get.New(log, app.ServicePayment)).Methods("GET")
	api.Handle("/orders/{id}/payment/reconcile", payment_reconcile_post.New(log, app.ServicePayment)).Methods("POST")
	api.Handle("/orders/{id}/refund", operatorOnly(order_refund_post.New(log, app.ServiceWallet))).Methods("POST")

	api.Handle("/wallets/adjustments", operatorOnly(wallet_adjustment_post.New(log, app.ServiceWallet))).Methods("POST")
	api.Handle("/wallets/{kind}", wallet_get.New(log, app.ServiceWallet)).Methods("GET")
	api.Handle("/wallets/{kind}/payouts", payout_post.New(log, app.ServiceWallet)).Methods("POST")
	api.Handle("/payouts/{id}/transfer", operatorOnly(payout_transfer_post.New(log, app.ServiceWallet))).Methods("POST")
	api.Handle("/payouts/{id}/reject", operatorOnly(payout_reject_post.New(log, app.ServiceWallet))).Methods("POST")

	api.Handle("/shippers", shipper_post.New(log, app.ServiceShipper)).Methods("POST")
	api.Handle("/shippers/me", shipperOnly(shipper_me_put.New(log, app.ServiceShipper))).Methods("PUT")
	api.Handle("/shippers/{id}", shipper_get.New(log, app.ServiceShipper)).Methods("GET")

	api.Handle("/routes/optimize", routes_optimize_post.New(log, app.ServiceRoute)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
