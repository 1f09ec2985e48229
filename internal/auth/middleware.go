package auth

import (
	"net/http"
	"strings"

	"github.com/sanyamseac/game/internal/database"
	"github.com/sanyamseac/game/internal/models"
	"github.com/sanyamseac/game/pkg/jwt"
	"github.com/sanyamseac/game/pkg/session"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the middleware stores the resolved *models.User.
const ContextUserKey = "user"

// AuthMiddleware creates a gin middleware that requires a valid session
// cookie or a bearer token and loads the matching user into the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the user if a valid credential is present, but
// does not fail if it is missing or invalid. Used on public pages that adapt
// to a logged-in viewer.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveUser(c); user != nil {
			c.Set(ContextUserKey, user)
			c.Set("userID", user.ID)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// resolveUser checks the session cookie first, then falls back to an
// Authorization bearer token issued at admin login.
func resolveUser(c *gin.Context) *models.User {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		var user models.User
		hash := session.Hash(token)
		if err := database.DB.Where("session_hash = ? AND session_hash <> ''", hash).First(&user).Error; err == nil {
			return &user
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if userID, err := jwt.ParseUserID(parts[1]); err == nil {
				var user models.User
				if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
					return &user
				}
			}
		}
	}

	return nil
}
