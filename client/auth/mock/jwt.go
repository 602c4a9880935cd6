package mock

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/authprobe/schema"
)

const tokenTTL = 72 * time.Hour

// Claims carries the identity embedded in a session token.
type Claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  schema.Role `json:"role"`
	jwt.RegisteredClaims
}

// createJWT creates a signed HS256 session token for user
func (m *AuthService) createJWT(user *User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

// parseJWT validates a session token and returns its claims
func (m *AuthService) parseJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
