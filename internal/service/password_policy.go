package service

import (
	"unicode"

	"github.com/wellkart/wellkart/internal/config"
)

// passwordPolicyError 携带 i18n key 与格式化参数，errors.Is 对齐 ErrWeakPassword。
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

func (e passwordPolicyError) Key() string {
	return e.key
}

func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

type passwordClasses struct {
	upper   bool
	lower   bool
	number  bool
	special bool
}

func classifyPassword(password string) passwordClasses {
	var cls passwordClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			cls.upper = true
		case unicode.IsLower(r):
			cls.lower = true
		case unicode.IsDigit(r):
			cls.number = true
		default:
			cls.special = true
		}
	}
	return cls
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	// 长度按字符数而非字节数计算。
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	cls := classifyPassword(password)
	switch {
	case policy.RequireUpper && !cls.upper:
		return passwordPolicyError{key: "error.password_require_upper"}
	case policy.RequireLower && !cls.lower:
		return passwordPolicyError{key: "error.password_require_lower"}
	case policy.RequireNumber && !cls.number:
		return passwordPolicyError{key: "error.password_require_number"}
	case policy.RequireSpecial && !cls.special:
		return passwordPolicyError{key: "error.password_require_special"}
	}
	return nil
}
