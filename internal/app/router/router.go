package router

import (
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	userhandler "account_backend/internal/feature/users/transport/handler"
	"account_backend/internal/platform/http/handler"
)

// NewRouter assembles the HTTP route table.
// authRequired is the bearer-token guard and authLimiter the fixed-window
// limiter applied to the credential-handling endpoints.
func NewRouter(auth *authhandler.AuthHandler, users *userhandler.UserHandler,
	authRequired, authLimiter gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/users", users.Create)
	r.GET("/users/:id", users.Get)
	r.PUT("/users/:id", users.Update)
	r.DELETE("/users/:id", users.Delete)

	// 認証系エンドポイント（資格情報を扱うためレートリミット付き）
	r.POST("/auth/login", authLimiter, auth.Login)
	r.POST("/auth/renew-token", authLimiter, auth.RenewToken)
	// ログアウトはハンドラー自身がAuthorizationヘッダーを検査する
	r.POST("/auth/logout", auth.Logout)

	// 認証必須のルート
	protected := r.Group("/")
	protected.Use(authRequired)
	{
		protected.GET("/users", users.List)
		protected.GET("/users/email/:email", users.GetByEmail)
	}

	return r
}
