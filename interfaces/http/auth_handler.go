package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"crosscast/domain/dto"
	"crosscast/domain/model"
	"crosscast/infrastructure/clients/googleauth"
	"crosscast/infrastructure/logger"
)

// AuthHandler drives the Google OAuth consent flow for YouTube.
type AuthHandler struct {
	provider    *googleauth.TokenProvider
	frontendURL string
}

func NewAuthHandler(provider *googleauth.TokenProvider, frontendURL string) *AuthHandler {
	return &AuthHandler{provider: provider, frontendURL: frontendURL}
}

type oauthState struct {
	UserID string `json:"user_id"`
}

// Connect redirects the browser to Google's consent screen. The identity
// comes from the auth middleware, never from the request itself, so a caller
// cannot bind tokens to another account; it is round-tripped through the
// opaque state parameter.
func (h *AuthHandler) Connect(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "authentication required"})
		return
	}

	payload, _ := json.Marshal(oauthState{UserID: userID})
	state := base64.URLEncoding.EncodeToString(payload)
	c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthCodeURL(state))
}

// Callback receives the authorization code, stores the tokens, and sends the
// browser back to the app.
func (h *AuthHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		h.redirect(c, "youtube_auth=denied")
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "missing authorization code"})
		return
	}

	var state oauthState
	raw, err := base64.URLEncoding.DecodeString(c.Query("state"))
	if err == nil {
		err = json.Unmarshal(raw, &state)
	}
	if err != nil || state.UserID == "" {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "invalid state parameter"})
		return
	}

	if _, err := h.provider.Exchange(c.Request.Context(), state.UserID, model.PlatformYouTube, code); err != nil {
		logger.GetLogger().WithField("error", err).Error("OAuth code exchange failed")
		h.redirect(c, "youtube_auth=failed")
		return
	}
	h.redirect(c, "youtube_auth=connected")
}

func (h *AuthHandler) redirect(c *gin.Context, query string) {
	if h.frontendURL == "" {
		c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: query})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?"+query)
}
