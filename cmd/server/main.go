package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	httpdelivery "github.com/addispay/chapa-pay-hub/internal/delivery/http"
	"github.com/addispay/chapa-pay-hub/internal/infrastructure/chapagateway"
	"github.com/addispay/chapa-pay-hub/internal/infrastructure/config"
	"github.com/addispay/chapa-pay-hub/internal/infrastructure/postgres"
	"github.com/addispay/chapa-pay-hub/internal/infrastructure/qrgenerator"
	"github.com/addispay/chapa-pay-hub/internal/usecase/checkout"
	"github.com/addispay/chapa-pay-hub/internal/usecase/generateqr"
	"github.com/addispay/chapa-pay-hub/internal/usecase/verify"
	"github.com/addispay/chapa-pay-hub/pkg/chapa"
)

const (
	qrCodeSize            = 256
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second

	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on system env vars")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	if cfg.ChapaSecretKey == "" {
		logger.Error("CHAPA_SECRET_KEY is required")
		os.Exit(1)
	}

	pool, err := initDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var chapaOpts []chapa.ClientOption
	if cfg.ChapaBaseURL != "" {
		chapaOpts = append(chapaOpts, chapa.WithBaseURL(cfg.ChapaBaseURL))
	}
	gateway := chapagateway.NewGateway(chapa.New(cfg.ChapaSecretKey, chapaOpts...))

	payments := postgres.NewPaymentRepo(pool)
	qrGen := qrgenerator.NewGenerator(qrCodeSize)

	checkoutUC := checkout.NewUseCase(gateway, payments)
	verifyUC := verify.NewUseCase(gateway, payments)
	generateQRUC := generateqr.NewUseCase(payments, qrGen)

	handler := httpdelivery.NewHandler(checkoutUC, verifyUC, generateQRUC)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
