package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"crosscast/domain/dto"
	"crosscast/domain/model"
)

// Auth validates the bearer token and stores the authenticated identity in
// the request context as user_id and user_name.
func Auth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			// SSE clients cannot set headers; allow the token as a query param.
			if t := c.Query("token"); t != "" {
				header = "Bearer " + t
			}
		}
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Missing authorization token"})
			return
		}

		claims := &model.UserClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Invalid or expired token"})
			return
		}

		c.Set("user_id", claims.Issuer)
		c.Set("user_name", claims.UserName)
		c.Next()
	}
}
