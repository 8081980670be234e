package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordLength はパスワードの最大文字数を定義します。
	maxPasswordLength = 50
	// passwordSpecials はパスワードに使用できる記号の集合です。
	passwordSpecials = "@$!%*?&"
)

// emailPattern はメールアドレス形式の検証に使用します。
var emailPattern = regexp.MustCompile(`^[\w-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// FieldViolation は1つのフィールドに対するバリデーション違反を表します。
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError は検出順に並んだフィールド違反のリストを保持します。
// 宣言的アノテーションの代わりに、明示的なバリデーション関数が構築します。
type ValidationError struct {
	Violations []FieldViolation
}

// Error はすべての違反を1つのメッセージにまとめて返します。
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// violations はフィールド違反を検出順に収集するビルダーです。
type violations struct {
	list []FieldViolation
}

// add は違反を1件追加します。
func (v *violations) add(field, message string) {
	v.list = append(v.list, FieldViolation{Field: field, Message: message})
}

// err は違反が1件でもあればValidationErrorを返します。
func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

// checkRequired は必須の文字列フィールドが空でないことを検証します。
func (v *violations) checkRequired(field, value string) {
	if value == "" {
		v.add(field, "must not be empty")
	}
}

// checkEmail はメールアドレスの形式を検証します。
func (v *violations) checkEmail(email string) {
	if email == "" {
		v.add("email", "must not be empty")
		return
	}
	if !emailPattern.MatchString(email) {
		v.add("email", "must be a valid email address")
	}
}

// checkPassword はパスワードの長さと複雑さを検証します。
// 大文字・小文字・数字・記号（@$!%*?&）を各1文字以上含み、
// かつそれ以外の文字を含まないことを要求します。
func (v *violations) checkPassword(password string) {
	if password == "" {
		v.add("password", "must not be empty")
		return
	}
	if len(password) < minPasswordLength {
		v.add("password", fmt.Sprintf("must be at least %d characters long", minPasswordLength))
		return
	}
	if len(password) > maxPasswordLength {
		v.add("password", fmt.Sprintf("must be at most %d characters long", maxPasswordLength))
		return
	}
	if !passwordComplexityOK(password) {
		v.add("password", "must include at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
}

// passwordComplexityOK はパスワードが複雑性要件を満たすかを判定します。
func passwordComplexityOK(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			// 許可されていない文字
			return false
		}
	}
	return upper && lower && digit && special
}

// validateNewUser は新規作成入力のすべてのフィールド制約を検証します。
func validateNewUser(in CreateUserInput) error {
	var v violations
	v.checkRequired("name", in.Name)
	v.checkRequired("lastName", in.LastName)
	v.checkRequired("username", in.Username)
	v.checkEmail(in.Email)
	v.checkPassword(in.Password)
	return v.err()
}
