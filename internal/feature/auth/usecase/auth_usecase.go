// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"account_backend/internal/feature/users/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository は認証サービスが必要とするユーザー参照を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenManager はトークンの発行・検証を抽象化します。
type TokenManager interface {
	// IssueAccessToken は短命のアクセストークンを発行します。
	IssueAccessToken(userID uint, email string) (string, error)
	// IssueRefreshToken は長命のリフレッシュトークンを発行します。
	IssueRefreshToken(userID uint, email string) (string, error)
	// VerifyToken は署名と有効期限を検証し、subとemailクレームを返します。
	VerifyToken(token string) (userID uint, email string, err error)
	// TimeToExpiry は署名を検証せずにexpクレームまでの残り時間を返します。
	// クレームが読めない場合は0を返します。
	TimeToExpiry(token string) time.Duration
}

// LoginResult はログイン成功時にクライアントへ返す情報です。
type LoginResult struct {
	UserID       uint
	Email        string
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	tokens     TokenManager
	revoked    RevocationStore
	refreshTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// refreshTTLはリフレッシュトークンの有効期間で、expクレームが読めない
// トークンの失効記録にも使用されます。
func NewAuthUsecase(users UserRepository, tokens TokenManager, revoked RevocationStore, refreshTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		tokens:     tokens,
		revoked:    revoked,
		refreshTTL: refreshTTL,
	}
}

// Login はユーザーを認証し、成功時にアクセストークンとリフレッシュトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ユーザー未検出・パスワード不一致・内部エラーのいずれもErrInvalidCredentialsに
// 集約し、どの段階で失敗したかを呼び出し側に漏らしません。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := u.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	refreshToken, err := u.tokens.IssueRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{
		UserID:       user.ID,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout はトークンを失効ストアに登録します。署名や有効期限の検証は行わず、
// トークンが渡されてさえいれば常に成功します。
// 失効記録のTTLはトークンの残り有効期間と同じで、期限が読めないトークンには
// 本物のトークンが生存し得る最長期間（リフレッシュトークンの有効期間）を使用します。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrTokenMissing
	}

	ttl := u.tokens.TimeToExpiry(token)
	if ttl <= 0 {
		ttl = u.refreshTTL
	}
	return u.revoked.Add(ctx, token, ttl)
}

// RenewToken はリフレッシュトークンを検証し、新しいアクセストークンを発行します。
// リフレッシュトークン自体のローテーションは行いません。
// 失効済み・改ざん・期限切れのいずれもErrInvalidTokenに集約します。
func (u *authUsecase) RenewToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrTokenMissing
	}

	revoked, err := u.revoked.Contains(ctx, refreshToken)
	if err != nil || revoked {
		return "", ErrInvalidToken
	}

	_, email, err := u.tokens.VerifyToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	// トークン発行後にユーザーが削除されている可能性があるため再解決する
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrUserNotFound
	}

	accessToken, err := u.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return "", ErrInvalidToken
	}
	return accessToken, nil
}
