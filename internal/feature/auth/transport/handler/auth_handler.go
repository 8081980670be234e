// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	// Logout はトークンを失効ストアに登録します。
	Logout(ctx context.Context, token string) error
	// RenewToken はリフレッシュトークンから新しいアクセストークンを発行します。
	RenewToken(ctx context.Context, refreshToken string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は、どの段階で失敗したかを問わず一律401を返却
// - 成功時はユーザー情報とトークンペア付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		User:         dto.LoginUserRes{ID: result.UserID, Email: result.Email},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// Logout はログアウトAPIエンドポイントを処理します。
// AuthorizationヘッダーからBearerプレフィックスを取り除いたトークンを
// 失効ストアに登録します。トークン欠落時は401を返却します。
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrTokenMissing) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrTokenMissing.Error()})
			return
		}
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("user logout successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

// RenewToken はトークン更新APIエンドポイントを処理します。
// - リクエストJSONをRenewTokenReqにバインド
// - トークン欠落・失効・検証失敗・ユーザー未検出はいずれも401を返却
// - 成功時は新しいアクセストークン付きで200を返却
func (h *AuthHandler) RenewToken(c *gin.Context) {
	var req dto.RenewTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("renew token bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	accessToken, err := h.auth.RenewToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		slog.Warn("renew token failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RenewTokenRes{AccessToken: accessToken})
}
