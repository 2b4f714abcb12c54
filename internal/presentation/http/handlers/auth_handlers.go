package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/security"
	"github.com/StoreScope/storescope-go/pkg/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandlers serves admin login and provides the admin route guard.
type AuthHandlers struct {
	logger    *logging.ChanneledLogger
	adminHash []byte
	jwtSecret string
}

// NewAuthHandlers creates auth handlers from the configured admin
// password. When no password is configured, login is disabled and all
// admin routes are unreachable.
func NewAuthHandlers(logger *logging.ChanneledLogger) (*AuthHandlers, error) {
	h := &AuthHandlers{logger: logger}

	if config.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h.adminHash = hash
	}

	h.jwtSecret = config.JWTSecret
	if h.jwtSecret == "" {
		secret, err := security.GenerateSecureKey(64)
		if err != nil {
			return nil, err
		}
		h.jwtSecret = secret
		logger.Auth().Warn("JWT_SECRET not set, generated an ephemeral secret; tokens will not survive restarts")
	}

	return h, nil
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// HandleLogin serves POST /api/v1/auth/login.
func (h *AuthHandlers) HandleLogin(c *gin.Context) {
	start := time.Now()

	if h.adminHash == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.adminHash, []byte(req.Password)); err != nil {
		h.logger.Auth().Warn("Admin login rejected", "remoteAddr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := security.GenerateAdminToken(h.jwtSecret, config.AdminTokenTTL)
	if err != nil {
		h.logger.LogError(logging.ChannelAuth, "token-generation", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	h.logger.Auth().Info("Admin login succeeded",
		"remoteAddr", c.ClientIP(),
		"duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AdminMiddleware guards routes that mutate system state.
func (h *AuthHandlers) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := security.ValidateJWT(tokenString, h.jwtSecret)
		if err != nil || !security.IsAdmin(claims) {
			h.logger.Auth().Warn("Admin token rejected", "remoteAddr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Next()
	}
}
