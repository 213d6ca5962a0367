package server

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"todo-service/internal/config"
	"todo-service/internal/handler"
	"todo-service/internal/migrations"
	"todo-service/internal/rate"
	"todo-service/internal/repository"
	"todo-service/internal/router"
	emailsvc "todo-service/internal/service/email"
	"todo-service/internal/usecase"
	"todo-service/pkg/cache"
	"todo-service/pkg/id"
	"todo-service/pkg/jwtutil"
	"todo-service/pkg/middleware"
)

// New wires repositories, usecases, and handlers into an http.Server.
// The returned cleanup func closes the pools.
func New(ctx context.Context, cfg config.AppConfig) (*http.Server, func(), error) {
	if err := migrations.Run(ctx, cfg.DBConnString); err != nil {
		return nil, nil, err
	}

	dbpool, err := pgxpool.New(ctx, cfg.DBConnString)
	if err != nil {
		return nil, nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	redisCache := cache.NewCacheWithClient(rdb)

	sf, err := id.NewSnowflake(1)
	if err != nil {
		dbpool.Close()
		return nil, nil, err
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		dbpool.Close()
		return nil, nil, err
	}

	userRepo := repository.NewUserRepository(dbpool)
	todoRepo := repository.NewTodoRepository(dbpool)
	otpAudit := repository.NewOTPAuditRepo(dbpool)
	otpStore := repository.NewRedisOTPStore(redisCache)
	emailLogRepo := repository.NewEmailLogRepo(dbpool)

	mailer := emailsvc.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	notifier := emailsvc.NewNotifier(mailer, emailLogRepo, sf, zapLogger)

	jwtGen := jwtutil.NewGenerator([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	verifier := jwtutil.NewVerifier([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)
	auth := middleware.NewAuthMiddleware(verifier)

	limiter := rate.NewLimiter(redisCache, cfg.OTP_Window, cfg.OTP_MaxPerWindow, cfg.OTP_Cooldown)

	userUC := usecase.NewUserUsecase(userRepo, sf, jwtGen)
	todoUC := usecase.NewTodoUsecase(todoRepo, sf)
	otpUC := usecase.NewOTPUsecase(userRepo, otpStore, otpAudit, limiter, sf, notifier, cfg.OTP_TTL)

	h := handler.NewAPIHandler(userUC, todoUC, otpUC)

	r := chi.NewRouter()
	router.SetupRoutes(r, h, auth, rdb)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	cleanup := func() {
		dbpool.Close()
		if err := rdb.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
		_ = zapLogger.Sync()
	}
	return srv, cleanup, nil
}
