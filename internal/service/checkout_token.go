package service

import (
	"errors"
	"time"

	"github.com/wellkart/wellkart/internal/config"
	"github.com/wellkart/wellkart/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// CheckoutTokenService 结账续接令牌服务。
// 令牌只携带购物车与地址的 ID，签名校验通过后才信任其中的 ID。
type CheckoutTokenService struct {
	cfg *config.Config
}

// NewCheckoutTokenService 创建结账令牌服务
func NewCheckoutTokenService(cfg *config.Config) *CheckoutTokenService {
	return &CheckoutTokenService{cfg: cfg}
}

// CheckoutTokenClaims 结账令牌声明
type CheckoutTokenClaims struct {
	CartID    uint `json:"cart_id"`
	AddressID uint `json:"address_id"`
	jwt.RegisteredClaims
}

// Generate 生成结账令牌
func (s *CheckoutTokenService) Generate(cartID, addressID uint) (string, time.Time, error) {
	expireHours := s.cfg.Checkout.TokenExpireHours
	if expireHours <= 0 {
		expireHours = constants.CheckoutTokenExpireHours
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	claims := CheckoutTokenClaims{
		CartID:    cartID,
		AddressID: addressID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.Checkout.TokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse 解析结账令牌，过期与无效分别返回对应业务错误
func (s *CheckoutTokenService) Parse(tokenString string) (*CheckoutTokenClaims, error) {
	if tokenString == "" {
		return nil, ErrCheckoutTokenInvalid
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &CheckoutTokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Checkout.TokenSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrCheckoutTokenExpired
		}
		return nil, ErrCheckoutTokenInvalid
	}
	if parsed, ok := token.Claims.(*CheckoutTokenClaims); ok && token.Valid {
		return parsed, nil
	}
	return nil, ErrCheckoutTokenInvalid
}
