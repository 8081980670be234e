package dto

// UpdateUserReq は PUT /users/:id のリクエストボディを表します。
// 省略されたフィールド（nil）は変更されません。
type UpdateUserReq struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
