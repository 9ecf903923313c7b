package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "repairbook/internal/handler/dto/request"
	resdto "repairbook/internal/handler/dto/response"
	"repairbook/internal/handler/httperr"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/usecase/commands"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authCommands: authCommands}
}

// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: result.AccessToken})
}
