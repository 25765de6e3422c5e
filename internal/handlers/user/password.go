package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quickplate_back_end/internal/models"
	"quickplate_back_end/internal/store"
	"quickplate_back_end/internal/utils"
)

// OtpValidity est la durée de vie du code de réinitialisation.
const OtpValidity = 10 * time.Minute

// Mailer envoie le code de réinitialisation à l'adresse du compte.
type Mailer interface {
	SendOtpEmail(to, name, otp string) error
}

// ================== FORGOT PASSWORD ==================

// POST /reset-password
func ResetPassword(users store.UserStore, codes store.CodeStore, mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.Err("Invalid request"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, input.Email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.Err("Please Signup"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password reset failed"))
			return
		}

		otp, err := utils.GenerateOtp()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password reset failed"))
			return
		}

		// Le code n'est persisté que si l'envoi du mail a réussi.
		if err := mailer.SendOtpEmail(user.Email, user.Name, otp); err != nil {
			log.Printf("❌ Erreur envoi email OTP à %s: %v", user.Email, err)
			c.JSON(http.StatusInternalServerError, models.Err("Failed to send otp email"))
			return
		}

		if err := users.SetOtp(ctx, user.ID, otp); err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password reset failed"))
			return
		}
		if err := codes.BindCode(ctx, otp, user.ID, OtpValidity); err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password reset failed"))
			return
		}

		c.JSON(http.StatusOK, models.Ok("otp has been sent to your email"))
	}
}

// ================== VERIFY OTP ==================

// POST /verify-otp
//
// Le code est résolu via sa liaison Redis vers le compte qui l'a
// demandé, puis revérifié contre le code stocké sur ce compte : un code
// deviné ne peut pas réécrire un autre compte. Usage unique.
func VerifyOtp(users store.UserStore, codes store.CodeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Otp         string `json:"otp" binding:"required"`
			NewPassword string `json:"newPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.Err("Invalid request"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		userID, err := codes.LookupCode(ctx, input.Otp)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password update failed"))
			return
		}
		if userID == "" {
			c.JSON(http.StatusBadRequest, models.Err("Invalid Otp"))
			return
		}

		// Le mot de passe de remplacement est hashé exactement comme au
		// signup.
		hashedPassword, err := utils.HashPassword(input.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password update failed"))
			return
		}

		err = users.ResetPassword(ctx, userID, input.Otp, hashedPassword)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.Err("Invalid Otp"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Password update failed"))
			return
		}

		if err := codes.DeleteCode(ctx, input.Otp); err != nil {
			log.Printf("⚠️ Erreur suppression code OTP: %v", err)
		}

		c.JSON(http.StatusOK, models.Ok("Password Updated"))
	}
}
