package model

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// User is an account that owns platform credentials and publish history.
type User struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ReqLogin is the login request payload.
type ReqLogin struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ReqRegister is the registration request payload.
type ReqRegister struct {
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

// UserClaims carries the authenticated identity inside a JWT. Issuer holds
// the user id.
type UserClaims struct {
	UserName string `json:"user_name"`
	jwt.StandardClaims
}
