package handler

import (
	"errors"
	"net/http"

	"github.com/sanyamseac/game/internal/auth"
	"github.com/sanyamseac/game/internal/database"
	"github.com/sanyamseac/game/internal/models"
	"github.com/sanyamseac/game/pkg/jwt"
	"github.com/sanyamseac/game/pkg/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RegisterInput defines the structure for player registration.
type RegisterInput struct {
	Name  string `json:"name" binding:"required" example:"testplayer"`
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserResponse defines the structure for the authenticated user's own state.
type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	CurrentLevel int    `json:"current_level"`
	IsActive     bool   `json:"is_active"`
	Disabled     bool   `json:"disabled"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		CurrentLevel: user.CurrentLevel,
		IsActive:     user.IsActive,
		Disabled:     user.Disabled,
	}
}

// endregion

// setSessionCookie issues the 30-day session cookie.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(session.MaxAge.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}

// RegisterPlayer godoc
// @Summary      Register a new player
// @Description  Creates a player account while registration is open and starts a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Registration is closed"
// @Failure      409  {object}  ErrorResponse "Email already registered"
// @Router       /auth/register [post]
func RegisterPlayer(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := session.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         models.RoleUser,
		SessionHash:  session.Hash(token),
		CurrentLevel: 1,
		IsActive:     true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var details models.GameDetails
		if err := tx.First(&details).Error; err != nil {
			return err
		}
		if !details.AllowRegistration {
			return errRegistrationClosed
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errRegistrationClosed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Registration is not available"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, newUserResponse(&user))
}

var errRegistrationClosed = errors.New("registration closed")

// LoginAdmin godoc
// @Summary      Log in an admin
// @Description  Authenticates an admin with email and password. Sets a session cookie and returns a bearer token for automation clients.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func LoginAdmin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Rotate the session credential on every login.
	sessionToken, err := session.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	if err := database.DB.Model(&user).Update("session_hash", session.Hash(sessionToken)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	setSessionCookie(c, sessionToken)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidates the caller's session and clears the cookie.
// @Tags         auth
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/logout [post]
func Logout(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := database.DB.Model(user).Update("session_hash", "").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the state of the currently authenticated user.
// @Tags         auth
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
