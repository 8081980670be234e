// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"account_backend/internal/feature/users/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost はパスワードハッシュに使用するコストファクターです。
const bcryptCost = 10

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// username または email が既に存在する場合、ErrDuplicateKeyを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindAll はすべてのユーザーを取得します。
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail は指定されたメールアドレスに完全一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update は変更済みのユーザーを保存します。
	// username または email が他のユーザーと衝突する場合、ErrDuplicateKeyを返します。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除し、削除前のスナップショットを返します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) (*entity.User, error)
}

// CreateUserInput は新規ユーザー作成の入力です。Passwordは平文で受け取り、
// ユースケース内でハッシュ化されます。
type CreateUserInput struct {
	Name     string
	LastName string
	Username string
	Email    string
	Password string
}

// UpdateUserInput は部分更新の入力です。nilのフィールドは変更されません。
type UpdateUserInput struct {
	Name     *string
	LastName *string
	Username *string
	Email    *string
	Password *string
}

// userUsecase はユーザー管理のビジネスロジックを実装します。
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// Create は入力を検証し、ハッシュ化されたパスワードで新規ユーザーを永続化します。
// 検証失敗時はValidationError、username/email重複時はErrDuplicateKeyを返します。
func (u *userUsecase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if err := validateNewUser(in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     in.Name,
		LastName: in.LastName,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List はすべてのユーザーを返します。公開用の射影はトランスポート層が行います。
func (u *userUsecase) List(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get はIDでユーザーを取得します。
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// GetByEmail はメールアドレスの完全一致でユーザーを取得します。
// 認証サービスの内部参照にも使用されます。
func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.users.FindByEmail(ctx, email)
}

// Update は指定されたフィールドのみを既存レコードにマージして保存します。
// マージ後のレコードを再検証し、UpdatedAtは保存時に必ず更新されます。
// CreatedAtは変更されません。
func (u *userUsecase) Update(ctx context.Context, id uint, in UpdateUserInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}

	// マージ後のプロフィールを再検証する。パスワードはハッシュ済みのため、
	// 新しい平文が渡されたときだけ複雑性を検証する。
	var v violations
	v.checkRequired("name", user.Name)
	v.checkRequired("lastName", user.LastName)
	v.checkRequired("username", user.Username)
	v.checkEmail(user.Email)
	if in.Password != nil {
		v.checkPassword(*in.Password)
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete はユーザーを削除し、削除されたレコードのスナップショットを返します。
func (u *userUsecase) Delete(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.Delete(ctx, id)
}
