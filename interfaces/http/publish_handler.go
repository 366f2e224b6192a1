package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"crosscast/domain/dto"
	"crosscast/domain/model"
	"crosscast/infrastructure/logger"
	"crosscast/usecase"
)

// Uploads are buffered in memory; cap the payload well below what the
// platforms accept anyway.
const maxUploadBytes = 512 << 20

type PublishHandler struct {
	publishUsecase usecase.IPublishUsecase
}

func NewPublishHandler(publishUsecase usecase.IPublishUsecase) *PublishHandler {
	return &PublishHandler{publishUsecase: publishUsecase}
}

// Publish accepts a multipart form with the video file plus caption fields
// and fans it out to every requested platform. The response always carries
// per-platform outcomes; partial failure is a 200.
func (h *PublishHandler) Publish(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.PublishRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "video file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, dto.Res{ResponseCode: "413", ResponseMessage: "video file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "failed to read video file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to buffer upload")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "failed to read video file"})
		return
	}

	asset := &model.MediaAsset{
		Content:  content,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Filename: fileHeader.Filename,
	}

	record, err := h.publishUsecase.Publish(c.Request.Context(), userID, &req, asset)
	if err != nil {
		// Validation errors are the caller's fault; a failed record write
		// after the uploads settled is ours.
		if errors.Is(err, usecase.ErrRecordPersist) {
			logger.GetLogger().WithField("error", err).Error("Failed to persist publish record")
			c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "failed to persist publish record"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: dto.PublishResponse{Record: record}})
}

// History returns the user's publish records, newest first.
func (h *PublishHandler) History(c *gin.Context) {
	userID := c.GetString("user_id")
	records, err := h.publishUsecase.History(c.Request.Context(), userID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to load publish history")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: records})
}

// Platforms lists every platform with its capability constraints.
func (h *PublishHandler) Platforms(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: h.publishUsecase.Platforms()})
}
