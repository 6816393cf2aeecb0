package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/application/auth"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

type AuthHandler struct {
	authService *auth.Service
	logger      logger.Interface
}

func NewAuthHandler(authService *auth.Service, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
