package auth

import (
	"errors"
	"net/http"
	"time"

	"venuehub/internal/shared/utils/response"
	"venuehub/internal/shared/utils/validation"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(ctx, validation.FieldErrors(err))
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to login")
		return
	}

	ctx.JSON(http.StatusOK, token)
}

func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(ctx, validation.FieldErrors(err))
		return
	}

	token, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(ctx, http.StatusConflict, "User with this email already exists")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to register user")
		return
	}

	ctx.JSON(http.StatusCreated, token)
}

func (c *Controller) Me(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	user, err := c.service.GetMe(ctx.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(ctx, http.StatusUnauthorized, "Unauthenticated")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get user")
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *Controller) Logout(ctx *gin.Context) {
	jti := ctx.GetString("token_jti")
	expUnix := ctx.GetInt64("token_exp")

	err := c.service.Logout(ctx.Request.Context(), jti, time.Unix(expUnix, 0))
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Error(ctx, http.StatusUnauthorized, "Unauthenticated")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to logout")
		return
	}

	response.Message(ctx, http.StatusOK, "Successfully logged out")
}
