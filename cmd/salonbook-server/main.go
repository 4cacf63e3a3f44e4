package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"salonbook/backend/internal/cache"
	"salonbook/backend/internal/config"
	"salonbook/backend/internal/events"
	"salonbook/backend/internal/ratelimit"
	"salonbook/backend/internal/service/booking"
	"salonbook/backend/internal/store"
	"salonbook/backend/internal/store/postgres"
	"salonbook/backend/internal/telemetry"
	grpcTransport "salonbook/backend/internal/transport/grpc"
	"salonbook/backend/internal/transport/httpapi"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", "salonbook-server"),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", "salonbook-server"),
	)
	slog.SetDefault(log)

	grpcAddr := net.JoinHostPort(cfg.GRPCHost, strconv.Itoa(cfg.GRPCPort))
	log.Info("starting",
		slog.String("grpc_addr", grpcAddr),
		slog.String("http_addr", cfg.HTTPAddr),
		slog.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTelEnabled,
		ServiceName: "salonbook-server",
		Endpoint:    cfg.OTelEndpoint,
		SampleRatio: cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Error("tracing setup failed", slog.Any("err", err), slog.String("endpoint", cfg.OTelEndpoint))
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown failed", slog.Any("err", err))
		}
	}()

	log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
	db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
		log.Error("database connection failed", args...)
		os.Exit(1)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}()

	if cfg.DBMigrate {
		if err := postgres.Migrate(ctx, db, log); err != nil {
			log.Error("database migration failed", slog.Any("err", err))
			os.Exit(1)
		}
	}
	if cfg.DBSeed {
		services, artists, err := postgres.SeedCatalog(ctx, db)
		if err != nil {
			log.Error("catalog seed failed", slog.Any("err", err))
			os.Exit(1)
		}
		log.Info("catalog seeded", slog.Int("services_added", services), slog.Int("artists_added", artists))
	}

	checks := map[string]httpapi.ReadyCheck{
		"database": func(ctx context.Context) error { return postgres.Ready(ctx, db) },
	}

	var catalogRepo store.CatalogRepository = postgres.NewCatalogRepo(db)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn("redis close failed", slog.Any("err", err))
			}
		}()
		catalogRepo = newCatalogCache(ctx, catalogRepo, rdb, log, cfg.RedisCacheTTL, cfg.DBSeed)
		checks["redis"] = cache.ReadyCheck(rdb)
		log.Info("catalog cache enabled", slog.String("redis_addr", cfg.RedisAddr), slog.Duration("ttl", cfg.RedisCacheTTL))
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.KafkaBrokers != "" {
		kp, err := events.NewKafkaPublisher(events.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Error("kafka publisher setup failed", slog.Any("err", err))
			os.Exit(1)
		}
		defer func() {
			if err := kp.Close(); err != nil {
				log.Warn("kafka writer close failed", slog.Any("err", err))
			}
		}()
		publisher = kp
		checks["kafka"] = events.ReadyCheck(cfg.KafkaBrokers)
		log.Info("booking events enabled", slog.String("topic", kp.Topic()))
	}

	catalog := booking.NewCatalog(catalogRepo, booking.WithRoster(cfg.Roster))
	engine := booking.NewEngine(catalogRepo, postgres.NewBookingRepo(db),
		booking.WithLogger(log.With(slog.String("component", "booking.engine"))),
		booking.WithPublisher(publisher),
		booking.WithAvailabilityPolicy(cfg.EnforceAvailability),
		booking.WithHours(booking.Hours{
			Open:      cfg.HoursOpen,
			LastStart: cfg.HoursClose,
			Step:      cfg.HoursSlotStep,
		}),
	)

	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)

	healthSrv := health.NewServer()
	grpcServer := grpcTransport.NewServer(grpcTransport.ServerConfig{
		RequestTimeout: cfg.GRPCRequestTimeout,
		Limiter:        limiter,
	}, grpcTransport.NewSalonServer(catalog, engine, log), healthSrv)

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", grpcAddr))
		os.Exit(1)
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()
	log.Info("grpc server started", slog.String("grpc_addr", grpcAddr))

	var httpServer *http.Server
	if cfg.HTTPAddr != "" {
		gin.SetMode(gin.ReleaseMode)
		router := httpapi.NewRouter(httpapi.NewHandler(catalog, engine, log, httpapi.WithBookingLimiter(limiter)), log, checks)
		httpServer = httpapi.NewServer(cfg.HTTPAddr, router)
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
		log.Info("http server started", slog.String("http_addr", cfg.HTTPAddr))
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("server stopped with error", slog.Any("err", err))
		}
	}

	healthSrv.Shutdown()
	shutdownHTTP(log, httpServer, cfg.ShutdownTimeout)
	shutdown(log, grpcServer, cfg.ShutdownTimeout)
}

func shutdown(log *slog.Logger, s *grpc.Server, timeout time.Duration) {
	log.Info("shutting down grpc server", slog.Duration("timeout", timeout))

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-timer.C:
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func shutdownHTTP(log *slog.Logger, s *http.Server, timeout time.Duration) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Warn("http graceful shutdown failed; closing", slog.Any("err", err))
		_ = s.Close()
		return
	}
	log.Info("http server stopped")
}

// newCatalogCache wraps base in the Redis listing cache. Listings cached by an
// earlier process are dropped after a reseed so new rows show up before the
// TTL runs out.
func newCatalogCache(ctx context.Context, base store.CatalogRepository, rdb *redis.Client, log *slog.Logger, ttl time.Duration, reseeded bool) *cache.CatalogRepository {
	c := cache.NewCatalogRepository(base, rdb, log.With(slog.String("component", "cache.catalog")), cache.Config{
		TTL: ttl,
	})
	if reseeded {
		if err := c.Invalidate(ctx); err != nil {
			log.Warn("catalog cache invalidate failed", slog.Any("err", err))
		}
	}
	return c
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
