// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は POST /auth/login のリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUserRes はログインレスポンスに含めるユーザー情報です。
// idとemail以外の属性は返しません。
type LoginUserRes struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// LoginRes はログイン成功時のレスポンスを表します。
type LoginRes struct {
	User         LoginUserRes `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}
