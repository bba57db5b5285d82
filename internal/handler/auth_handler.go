package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/middleware"
	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/service"
	"github.com/zaalasociety/academy-api/internal/session"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	metrics *service.MetricsService
	cookies *session.CookieCodec
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, metrics *service.MetricsService, cookies *session.CookieCodec) *AuthHandler {
	return &AuthHandler{service: svc, metrics: metrics, cookies: cookies}
}

// Login godoc
// @Summary Authenticate as a student or instructor
// @Description Verify credentials against the store selected by user_type and establish a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.metrics.RecordLogin(string(req.UserType), false)
		response.Error(c, err)
		return
	}

	if err := h.cookies.Issue(c, sess); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to issue session cookie"))
		return
	}

	h.metrics.RecordLogin(string(req.UserType), true)
	response.JSON(c, http.StatusOK, models.LoginResponse{Principal: sess.Principal}, nil)
}

// Logout godoc
// @Summary End the current session
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.SessionToken(c)
	if ok {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}
	h.cookies.Clear(c)
	response.NoContent(c)
}

// Signup godoc
// @Summary Register a student account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signup payload"))
		return
	}

	profile, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

// ChangePassword godoc
// @Summary Change the current account password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body handler.changePasswordRequest true "Password payload"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /profile/password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid password payload"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), principal.ID, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
