package grpc

import (
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"salonbook/backend/internal/ratelimit"
)

type ServerConfig struct {
	RequestTimeout time.Duration
	// RateLimitRPS <= 0 disables booking throttling. Ignored when Limiter is
	// set.
	RateLimitRPS   float64
	RateLimitBurst int
	// Limiter is shared with other transports so a client has one budget.
	Limiter *ratelimit.Limiter
}

// NewServer builds a gRPC server that speaks the salon codec, applies the
// request deadline and booking throttle, traces every call and serves the
// standard health service when healthSrv is non-nil.
func NewServer(cfg ServerConfig, salon SalonServiceServer, healthSrv *health.Server) *grpc.Server {
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	s := grpc.NewServer(
		grpc.ForceServerCodec(Codec{}),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			DefaultRequestTimeout(cfg.RequestTimeout),
			RateLimit(limiter, SalonService_AttemptBooking_FullMethodName),
		),
	)
	RegisterSalonServiceServer(s, salon)
	if healthSrv != nil {
		healthpb.RegisterHealthServer(s, healthSrv)
	}
	return s
}
