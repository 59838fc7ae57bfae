package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/config"
)

func TestValidatePasswordEmptyPolicy(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should accept anything, got %v", err)
	}
}

func TestValidatePasswordRules(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireNumber: true,
	}

	cases := []struct {
		password string
		wantKey  string
	}{
		{"Ab1", "error.password_min_length"},
		{"abcdefg1", "error.password_require_upper"},
		{"Abcdefgh", "error.password_require_number"},
		{"Abcdefg1", ""},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.wantKey == "" {
			if err != nil {
				t.Fatalf("password %q should pass, got %v", tc.password, err)
			}
			continue
		}
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q want ErrWeakPassword, got %v", tc.password, err)
		}
		var policyErr passwordPolicyError
		if !errors.As(err, &policyErr) {
			t.Fatalf("password %q want passwordPolicyError, got %T", tc.password, err)
		}
		if policyErr.Key() != tc.wantKey {
			t.Fatalf("password %q key want %s, got %s", tc.password, tc.wantKey, policyErr.Key())
		}
	}
}

func TestValidatePasswordMinLengthCountsRunes(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 4}
	if err := validatePassword(policy, "密码密码"); err != nil {
		t.Fatalf("4 runes should satisfy min length 4, got %v", err)
	}
	if err := validatePassword(policy, "密码密"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("3 runes want ErrWeakPassword, got %v", err)
	}
}
