package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"expodir/internal/helpers"
	"expodir/internal/models"
)

const (
	accessTokenTTL = 12 * time.Hour
	resetTokenTTL  = 30 * time.Minute
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	MobilePhone string `json:"mobile_phone"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func signToken(userID uint, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	role := models.RoleVisitor
	switch models.Role(req.Role) {
	case models.RoleExhibitor, models.RoleOrganizer:
		role = models.Role(req.Role)
	}

	user := &models.User{
		Username: req.Username,
		Email:    &req.Email,
		Password: req.Password,
		Role:     role,
	}
	if req.MobilePhone != "" {
		user.MobilePhone = &req.MobilePhone
	}

	created, err := registry.Users.Create(c.Request.Context(), user)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully.", "id": created.ID})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	user, err := registry.Users.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	tokenString, err := signToken(user.ID, secret, accessTokenTTL)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}
	if _, err := registry.Tokens.Issue(c.Request.Context(), user.ID, tokenString, models.TokenAccess, time.Now().Add(accessTokenTTL)); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to persist token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"token_type":   "bearer",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	user, err := registry.Users.GetByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}
	c.JSON(http.StatusOK, user)
}

func Logout(c *gin.Context) {
	registry, ok := registryFrom(c)
	if !ok {
		return
	}
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := registry.Tokens.Revoke(c.Request.Context(), tokenString); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	user, err := registry.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if user == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	secret := os.Getenv("RESET_SECRET")
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	tokenString, err := signToken(user.ID, secret, resetTokenTTL)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate reset token.")
		return
	}
	if _, err := registry.Tokens.Issue(c.Request.Context(), user.ID, tokenString, models.TokenReset, time.Now().Add(resetTokenTTL)); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to persist reset token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset token created.", "reset_token": tokenString})
}

func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	registry, ok := registryFrom(c)
	if !ok {
		return
	}

	token, err := registry.Tokens.Validate(c.Request.Context(), req.Token)
	if err != nil || token.TokenType != models.TokenReset {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid or expired token.")
		return
	}

	if _, err := registry.Users.Update(c.Request.Context(), token.UserID, map[string]interface{}{
		"password": req.NewPassword,
	}); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}
	if err := registry.Tokens.Revoke(c.Request.Context(), req.Token); err != nil {
		helpers.RespondManagerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}
