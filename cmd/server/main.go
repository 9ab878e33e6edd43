package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/popcorngo/internal/booking"
	"github.com/iliyamo/popcorngo/internal/catalog"
	"github.com/iliyamo/popcorngo/internal/config"
	"github.com/iliyamo/popcorngo/internal/handler"
	"github.com/iliyamo/popcorngo/internal/logging"
	q "github.com/iliyamo/popcorngo/internal/queue"
	"github.com/iliyamo/popcorngo/internal/repository"
	"github.com/iliyamo/popcorngo/internal/router"
	"github.com/iliyamo/popcorngo/internal/service"
)

func main() {
	_ = godotenv.Load() // a missing .env is fine

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		logger.Warn().Msg("redis unavailable; response cache and rate limiting disabled")
	}

	catalogRepo := repository.NewCatalogRepo()
	sessions := repository.NewSessionRepo(cfg.Booking.SessionTTL)

	layout := booking.DefaultLayout(cfg.Booking.Tier1Price, cfg.Booking.Tier2Price, cfg.Booking.Tier3Price)
	layout.BookedRatio = cfg.Booking.BookedRatio
	bookingSvc := service.NewBookingService(catalogRepo, sessions,
		service.NewAMQPPublisher(cfg.RabbitMQURL, logger),
		service.BookingConfig{
			Layout: layout,
			Rules:  booking.Rules{MaxSeats: cfg.Booking.MaxSeats, ConvenienceFee: cfg.Booking.ConvenienceFee},
		}, logger)

	e := router.New(router.Deps{
		Logger:    logger,
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Catalog:   handler.NewCatalogHandler(service.NewCatalogService(catalogRepo, catalog.NewFilter())),
		Booking:   handler.NewBookingHandler(bookingSvc),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	addr := ":" + cfg.Port
	g.Go(func() error {
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		return e.Shutdown(sctx)
	})
	g.Go(func() error {
		return sessions.RunJanitor(gctx, cfg.JanitorInterval, func(n int) {
			logger.Debug().Int("purged", n).Msg("expired booking sessions removed")
		})
	})
	if cfg.ConsumerEnabled {
		g.Go(func() error {
			return q.StartBookingConsumer(gctx, q.ConsumerConfig{URL: cfg.RabbitMQURL, LogPath: cfg.BookingLogPath}, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
