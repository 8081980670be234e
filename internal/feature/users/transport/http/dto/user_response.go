package dto

import (
	"time"

	"account_backend/internal/feature/users/domain/entity"
)

// UserRes は単一ユーザーのレスポンスを表します。
// パスワードハッシュは常に除外されます。
type UserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserRes はエンティティからパスワードを除外したレスポンスを構築します。
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserListItemRes は一覧表示用の射影です。
// パスワードに加え、メールアドレスとIDも除外されます。
type UserListItemRes struct {
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserListRes は一覧用の射影レスポンスを構築します。
func NewUserListRes(users []*entity.User) []UserListItemRes {
	items := make([]UserListItemRes, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItemRes{
			Name:      u.Name,
			LastName:  u.LastName,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return items
}
