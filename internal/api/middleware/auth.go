package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assuredgig/internal/models"
	"assuredgig/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID" // Key to store user ID in context
	roleCtx             = "userRole"
	sessionCtx          = "sessionID"

	// SessionCookie carries the access token for browser clients.
	SessionCookie = "ag_session"
	// accessTokenQuery is accepted for websocket upgrades, where browsers cannot set headers.
	accessTokenQuery = "access_token"
)

var (
	errMissingToken = errors.New("authorization header missing")
	errBadHeader    = errors.New("invalid authorization header format")
)

// Authenticator resolves an access token to its principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Principal, error)
}

// JWTAuthMiddleware creates a Gin middleware that authenticates the caller from a
// Bearer header, the session cookie, or (for websockets) the access_token query param.
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			log.Debugf("Auth middleware: %v", err)
			msg := "Authorization header required"
			if errors.Is(err, errBadHeader) {
				msg = "Invalid Authorization header format"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			log.WithError(err).Debug("Auth middleware: token rejected")
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			case errors.Is(err, services.ErrInvalidCredentials):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				log.WithError(err).Error("Auth middleware: session lookup failed")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication temporarily unavailable"})
			}
			return
		}

		// Store the principal in context for downstream handlers
		c.Set(userCtx, principal.UserID)
		c.Set(roleCtx, principal.Role)
		c.Set(sessionCtx, principal.SessionID)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader(authorizationHeader); authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
			return "", errBadHeader
		}
		return headerParts[1], nil
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	if token := c.Query(accessTokenQuery); token != "" && isWebsocketUpgrade(c.Request) {
		return token, nil
	}
	return "", errMissingToken
}

func isWebsocketUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

// RequireRole rejects callers whose role is not in roles. It must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// GetUserIDFromContext returns the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

func GetRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("role not found in context")
	}
	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("role in context is of invalid type")
	}
	return role, nil
}

// GetSessionIDFromContext returns the session id, or "" for unauthenticated requests.
func GetSessionIDFromContext(c *gin.Context) string {
	return c.GetString(sessionCtx)
}

// SetPrincipal stores a principal the same way JWTAuthMiddleware does. Used by tests.
func SetPrincipal(c *gin.Context, p *services.Principal) {
	c.Set(userCtx, p.UserID)
	c.Set(roleCtx, p.Role)
	c.Set(sessionCtx, p.SessionID)
}
