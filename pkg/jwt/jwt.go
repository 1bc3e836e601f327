package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el tenant (cliente del dashboard)
// sobre el que el usuario puede consultar ventas.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"` // "admin" | "analista" | "lector"
}

// Identidad datos extraídos de un token válido.
type Identidad struct {
	UserID   string
	TenantID string
	Role     string
}

// Generate firma un token HS256. Lo usan los tests y las herramientas internas;
// en producción los tokens los emite el servicio de identidad.
func Generate(secret, issuer string, id Identidad, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   id.UserID,
		TenantID: id.TenantID,
		Role:     id.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma, expiración y (si issuer no es vacío) el emisor.
func Parse(secret, issuer, tokenString string) (Identidad, error) {
	if secret == "" {
		return Identidad{}, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return Identidad{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identidad{}, fmt.Errorf("jwt: claims inválidos")
	}
	if claims.TenantID == "" {
		return Identidad{}, fmt.Errorf("jwt: token sin tenant_id")
	}
	return Identidad{UserID: claims.UserID, TenantID: claims.TenantID, Role: claims.Role}, nil
}
