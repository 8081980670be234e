package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	usersadapters "account_backend/internal/feature/users/adapters"
	usershandler "account_backend/internal/feature/users/transport/handler"
	usersusecase "account_backend/internal/feature/users/usecase"
	"account_backend/internal/platform/config"
	infradb "account_backend/internal/platform/db"
	jwtmw "account_backend/internal/platform/jwt"
	infraredis "account_backend/internal/platform/redis"
	"account_backend/internal/shared/ratelimiter"
)

func main() {
	// 設定（JWT_SECRET未設定なら起動しない）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.Open(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to in-memory token revocation.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := usersadapters.NewUserMySQL(db)
	revocationStore := di.NewRevocationStore(rdb)

	// トークン管理（アクセス15分・リフレッシュ7日がデフォルト）
	tokens := jwtmw.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, revocationStore, cfg.RefreshTokenTTL)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	authH := authhandler.NewAuthHandler(authUC)

	// 認証エンドポイント用レートリミッタ
	authLimiter := ratelimiter.Middleware(ratelimiter.NewLimiter(30, time.Minute))

	// ルータ生成
	r := router.NewRouter(authH, userH, jwtmw.AuthRequired(tokens, revocationStore), authLimiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
