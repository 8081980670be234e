// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/users/domain/entity"
	"account_backend/internal/feature/users/transport/http/dto"
	"account_backend/internal/feature/users/usecase"
)

// UserUsecase はユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Create は検証済みの入力から新規ユーザーを作成します。
	Create(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	// List はすべてのユーザーを返します。
	List(ctx context.Context) ([]*entity.User, error)
	// Get はIDでユーザーを取得します。
	Get(ctx context.Context, id uint) (*entity.User, error)
	// GetByEmail はメールアドレスの完全一致でユーザーを取得します。
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update は指定されたフィールドのみを既存レコードにマージして保存します。
	Update(ctx context.Context, id uint, in usecase.UpdateUserInput) (*entity.User, error)
	// Delete はユーザーを削除し、削除されたレコードのスナップショットを返します。
	Delete(ctx context.Context, id uint) (*entity.User, error)
}

// UserHandler はユーザー管理操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// writeError はユースケースのエラー分類をHTTPステータスコードに対応付けます。
// - ValidationError / ErrDuplicateKey → 400
// - ErrUserNotFound → 404
// - その他 → 500（内部情報はクライアントへ公開しない）
func writeError(c *gin.Context, err error) {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": vErr.Violations})
	case errors.Is(err, usecase.ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrDuplicateKey.Error()})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrUserNotFound.Error()})
	default:
		slog.Error("user operation failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID はパスパラメータのユーザーIDを解析します。
// 数値でないIDは存在しないレコードとして扱います。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrUserNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

// Create はユーザー作成APIエンドポイントを処理します。
// - リクエストJSONをCreateUserReqにバインド
// - 検証失敗時は違反リスト付きで400を返却
// - username/email重複時は400を返却
// - 成功時はパスワードを除外したユーザーと201を返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("create user failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	slog.Info("user created", "id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// List はユーザー一覧APIエンドポイントを処理します。
// 認証必須ルートに配置され、password/email/id を除外した射影を返します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListRes(users))
}

// Get はID指定のユーザー取得APIエンドポイントを処理します。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// GetByEmail はメールアドレス指定のユーザー取得APIエンドポイントを処理します。
// 認証必須ルートに配置されます。
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Update はユーザー部分更新APIエンドポイントを処理します。
// 送信されたフィールドのみが変更され、UpdatedAtは常に更新されます。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateUserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("update user failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Delete はユーザー削除APIエンドポイントを処理します。
// 成功時は204を返却します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user deleted", "id", id, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}
