package api

import (
	"errors"
	"net/http"

	reqdto "roombook/internal/handler/dto/request"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OtpHandler struct {
	cmds commands.OtpCommands
	q    queries.OtpQueries
}

func NewOtpHandler(cmds commands.OtpCommands, q queries.OtpQueries) *OtpHandler {
	return &OtpHandler{cmds: cmds, q: q}
}

// @Summary Send verification code
// @Description Email a one-time code; replaces any previous code for the address
// @Tags otp
// @Accept json
// @Produce json
// @Param request body reqdto.SendOtpRequest true "Send request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /otp/send [post]
func (h *OtpHandler) Send(c *gin.Context) {
	var req reqdto.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Send(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, commands.ErrOtpSendFailed) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to send verification code", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// @Summary Verify code
// @Description Check a submitted code; wrong and expired codes are indistinguishable
// @Tags otp
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOtpRequest true "Verify request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /otp/verify [post]
func (h *OtpHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Verify(c.Request.Context(), req.Email, req.Code); err != nil {
		if errors.Is(err, commands.ErrOtpInvalidOrExpired) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired code", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}

// @Summary Verification status
// @Tags otp
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} resdto.OtpStatusResponse
// @Failure 400 {object} map[string]string
// @Router /otp/status [get]
func (h *OtpHandler) Status(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing email"), "email is required", nil)
		return
	}

	status, err := h.q.Status(c.Request.Context(), email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.OtpStatusResponse{Email: status.Email, Verified: status.Verified})
}

// @Summary Delete expired codes (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OtpCleanupResponse
// @Failure 401 {object} map[string]string
// @Router /admin/otp/cleanup [post]
func (h *OtpHandler) Cleanup(c *gin.Context) {
	deleted, err := h.cmds.Cleanup(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OtpCleanupResponse{Deleted: deleted})
}
