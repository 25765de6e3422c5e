package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"quickplate_back_end/internal/models"
)

const (
	// Limites par endpoint
	LoginMaxAttempts          = 5
	SignupMaxAttempts         = 3
	ForgotPasswordMaxAttempts = 3

	// Durées de cooldown
	LoginCooldown          = 15 * time.Minute
	SignupCooldown         = 30 * time.Minute
	ForgotPasswordCooldown = 10 * time.Minute

	attemptsWindow = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email.
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return emailRateLimit(rdb, "login", LoginMaxAttempts, LoginCooldown)
}

// SignupRateLimit limite les créations de compte par email.
func SignupRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return emailRateLimit(rdb, "signup", SignupMaxAttempts, SignupCooldown)
}

// ForgotPasswordRateLimit limite les demandes de code de
// réinitialisation par email.
func ForgotPasswordRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return emailRateLimit(rdb, "forgot", ForgotPasswordMaxAttempts, ForgotPasswordCooldown)
}

// emailRateLimit compte les appels par email dans Redis avec cooldown.
// Redis indisponible : on laisse passer, la limitation est une défense
// d'appoint, pas un point de panne.
func emailRateLimit(rdb *redis.Client, scope string, maxAttempts int, cooldown time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer pour les handlers suivants.
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := scope + "_attempts:" + input.Email
		cooldownKey := scope + "_cooldown:" + input.Email

		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Err(
				fmt.Sprintf("Too many attempts. Try again in %d minutes", int(ttl.Minutes())+1)))
			return
		}

		attempts, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		rdb.Expire(ctx, key, attemptsWindow)

		if attempts > int64(maxAttempts) {
			rdb.Set(ctx, cooldownKey, "1", cooldown)
			rdb.Del(ctx, key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Err(
				fmt.Sprintf("Too many attempts. Try again in %d minutes", int(cooldown.Minutes()))))
			return
		}

		c.Next()
	}
}
