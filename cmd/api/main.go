package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rollcall/internal/announcement"
	"rollcall/internal/attendance"
	"rollcall/internal/config"
	"rollcall/internal/handler"
	"rollcall/internal/httpmiddleware"
	"rollcall/internal/identity"
	"rollcall/internal/inbox"
	"rollcall/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func setupLogger(cfg config.App) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Env != "production" && cfg.Env != "prod" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func run(cfg config.App) error {
	var (
		attRepo attendance.Repository
		annRepo announcement.Repository
		inbRepo inbox.Repository
		pinger  handler.Pinger
	)

	if cfg.StoreBackend == "memory" {
		log.Warn().Msg("using in-memory store; data is lost on restart")
		attRepo = attendance.NewMemoryRepository()
		annRepo = announcement.NewMemoryRepository()
		inbRepo = inbox.NewMemoryRepository()
		pinger = memoryPinger{}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ms, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			_ = ms.Close(closeCtx)
		}()
		log.Info().Str("database", cfg.MongoDB).Msg("connected to mongo")

		mongoAtt := attendance.NewMongoRepository(ms.DB)
		if err := mongoAtt.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
		attRepo = mongoAtt
		annRepo = announcement.NewMongoRepository(ms.DB)
		inbRepo = inbox.NewMongoRepository(ms.DB)
		pinger = ms
	}

	h := handler.New(
		attendance.NewService(attRepo),
		announcement.NewService(annRepo),
		inbox.NewService(inbRepo),
		pinger,
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestID())
	r.Use(httpmiddleware.RequestLogger(log.Logger, "/health", "/metrics"))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))
	r.Use(securityHeaders())
	r.Use(httpmiddleware.RateLimit(newLimiter(cfg)))
	if cfg.IdentitySigningKey != "" {
		r.Use(identity.Middleware(cfg.IdentitySigningKey, cfg.IdentityIssuer))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.Routes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	// Give outstanding requests 10 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced shutdown")
	}

	log.Info().Msg("server exited")
	return nil
}

// newLimiter picks the rate limit backend. Redis holds the cap across
// replicas; the token bucket is per process.
func newLimiter(cfg config.App) httpmiddleware.Limiter {
	if cfg.RateLimitBackend == "redis" {
		rc := store.NewRedis(cfg.RedisAddr)
		return httpmiddleware.NewRedisLimiter(rc.Client, cfg.RateLimitPerMin)
	}
	return httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin)
}

// memoryPinger stands in for the database health check when running on the
// in-memory store.
type memoryPinger struct{}

func (memoryPinger) Ping(context.Context) error { return nil }

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Only add HSTS in production
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
