package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickplate_back_end/internal/models"
	"quickplate_back_end/internal/utils"
)

// AuthRequired vérifie le jeton de session porté par le cookie "token"
// et place l'id utilisateur dans le contexte gin. Cookie absent,
// jeton corrompu, non signé ou expiré : 401, même enveloppe JSON.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Err("Unauthorized"))
			return
		}

		userID, err := utils.ParseJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Err("Unauthorized"))
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
