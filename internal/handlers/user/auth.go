package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quickplate_back_end/internal/models"
	"quickplate_back_end/internal/store"
	"quickplate_back_end/internal/utils"
)

// ================== SIGNUP ==================

// POST /signup
func Signup(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
			Name     string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.Err("Invalid request"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// email déjà pris ?
		if _, err := users.FindByEmail(ctx, input.Email); err == nil {
			c.JSON(http.StatusBadRequest, models.Err("Please Login"))
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, models.Err("Signup failed"))
			return
		}

		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Signup failed"))
			return
		}

		user := &models.User{
			ID:        primitive.NewObjectID().Hex(),
			Name:      input.Name,
			Email:     input.Email,
			Password:  hashedPassword,
			CartItems: []string{},
		}

		if err := users.Create(ctx, user); err != nil {
			// l'index unique couvre la course entre le FindByEmail et
			// l'insertion
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, models.Err("Please Login"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.Err("Signup failed"))
			return
		}

		c.JSON(http.StatusCreated, models.Ok("Signup Successful"))
	}
}

// ================== LOGIN / LOGOUT ==================

// POST /login
func Login(users store.UserStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.Err("Invalid request"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, input.Email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.Err("Please Signup"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Login failed"))
			return
		}

		if !utils.VerifyPassword(input.Password, user.Password) {
			c.JSON(http.StatusBadRequest, models.Err("Invalid Credentials"))
			return
		}

		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			log.Printf("❌ Erreur génération JWT: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err("Login failed"))
			return
		}

		setTokenCookie(c, token, int(utils.TokenValidity.Seconds()))
		c.JSON(http.StatusOK, models.Ok("Login Successful"))
	}
}

// POST /logout
//
/// Pas de liste de révocation : on efface seulement le cookie, un jeton
// déjà émis reste valable jusqu'à son expiration.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		setTokenCookie(c, "", -1)
		c.JSON(http.StatusOK, models.Ok("Logged Out"))
	}
}

// ================== PROFIL ==================

// GET /user
func Me(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.Err("User not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("User lookup failed"))
			return
		}

		c.JSON(http.StatusOK, models.Response{Success: true, User: user, Message: "User found"})
	}
}

// setTokenCookie pose (ou efface) le cookie de session : HttpOnly,
// Secure et SameSite=None, inaccessible aux scripts de page et jamais
// rejoué cross-origin.
func setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", token, maxAge, "/", "", true, true)
}
