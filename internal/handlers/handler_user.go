package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranabook/kirana_backend/internal/apperrors"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/kiranabook/kirana_backend/internal/dto"
	"github.com/kiranabook/kirana_backend/internal/middleware"
	"github.com/kiranabook/kirana_backend/internal/platform/config"
	"github.com/kiranabook/kirana_backend/internal/utils"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, cfg *config.Config) *userHandler {
	return &userHandler{
		userService: us,
		cfg:         cfg,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(r *gin.Engine, userService portssvc.UserSvcFacade, cfg *config.Config) {
	h := newUserHandler(userService, cfg)

	users := r.Group("/api/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
	}
}

// register creates a new user account.
func (h *userHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to register user", slog.String("email", req.Email))

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate email on registration", slog.String("email", req.Email))
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already in use"})
		} else {
			logger.Error("Failed to register user in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login authenticates a user and returns the user with an access token.
func (h *userHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.LoginParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	user, err := h.userService.LoginUser(c.Request.Context(), params.Email, params.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// Same response for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			logger.Error("Failed to login user in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		}
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("User logged in successfully", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{User: dto.ToUserResponse(user), Token: token})
}
