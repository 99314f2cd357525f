package auth

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims токен выпускает внешний сервис входа: sub это ID пользователя, role его роль.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier проверяет HS256-токены общим секретом. Пустой issuer не проверяется.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (v *Verifier) Verify(raw string) (entities.Caller, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return entities.Caller{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidClaims, claims.Issuer)
	}

	caller := entities.Caller{
		ID:   claims.Subject,
		Role: entities.Role(claims.Role),
	}
	if caller.ID == "" || !caller.Role.Valid() {
		return entities.Caller{}, ErrInvalidClaims
	}
	return caller, nil
}

// Issue подписывает токен для пользователя. Нужен локальным окружениям и тестам,
// в проде токены выпускает сервис входа.
func (v *Verifier) Issue(caller entities.Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(caller.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
