package http

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"crosscast/domain/dto"
	"crosscast/domain/model"
	"crosscast/usecase"
)

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	req.Password = hashPassword(req.Password)

	res := h.userUsecase.Login(c.Request.Context(), req)
	c.JSON(statusFor(res.ResponseCode), res)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	req.Password = hashPassword(req.Password)

	res := h.userUsecase.Register(c.Request.Context(), req)
	c.JSON(statusFor(res.ResponseCode), res)
}

func hashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

func statusFor(code string) int {
	switch code {
	case "200":
		return http.StatusOK
	case "400":
		return http.StatusBadRequest
	case "401":
		return http.StatusUnauthorized
	case "409":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
