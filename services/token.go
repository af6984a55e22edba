package services

import (
	"fmt"
	"strings"

	apperrors "campusrent/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken verifies an HS256 bearer token and returns its subject.
func GetUserIDFromToken(tokenString, secret string) (string, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeMissingToken, "missing token", nil)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot read token claims", nil)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "token has no subject", nil)
	}
	return sub, nil
}
