package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// GenerateToken signs an HS256 JWT with the given claims. An "iat" claim is
// added when missing.
func GenerateToken(claims map[string]interface{}, secretKey string) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	if _, ok := mapClaims["iat"]; !ok {
		mapClaims["iat"] = time.Now().Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(secretKey))
}

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}
