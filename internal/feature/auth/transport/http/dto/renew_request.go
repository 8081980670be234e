package dto

// RenewTokenReq は POST /auth/renew-token のリクエストボディを表します。
// トークン欠落は400ではなく401（ErrTokenMissing）として扱うため、
// bindingタグでは必須化しません。
type RenewTokenReq struct {
	RefreshToken string `json:"refreshToken"`
}

// RenewTokenRes はトークン更新成功時のレスポンスを表します。
// リフレッシュトークンはローテーションされないため含まれません。
type RenewTokenRes struct {
	AccessToken string `json:"accessToken"`
}
