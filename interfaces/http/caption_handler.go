package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crosscast/domain/dto"
	"crosscast/usecase"
)

type CaptionHandler struct {
	captionUsecase usecase.ICaptionUsecase
}

func NewCaptionHandler(captionUsecase usecase.ICaptionUsecase) *CaptionHandler {
	return &CaptionHandler{captionUsecase: captionUsecase}
}

// Generate returns AI-suggested metadata, or a fallback built from the user's
// own draft when the service is unavailable.
func (h *CaptionHandler) Generate(c *gin.Context) {
	var input dto.CaptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	suggestion := h.captionUsecase.Suggest(c.Request.Context(), input)
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: suggestion})
}
