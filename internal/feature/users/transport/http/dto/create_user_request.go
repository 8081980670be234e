// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateUserReq は POST /users のリクエストボディを表します。
// フィールド制約の検証はユースケース層の明示的なバリデーション関数が行うため、
// ここではbindingタグを使用しません。
type CreateUserReq struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
