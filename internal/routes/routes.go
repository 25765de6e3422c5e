package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"quickplate_back_end/internal/config"
	"quickplate_back_end/internal/handlers/payement"
	"quickplate_back_end/internal/handlers/user"
	"quickplate_back_end/internal/middleware"
	"quickplate_back_end/internal/store"
)

// Deps porte les collaborateurs injectés dans les handlers.
type Deps struct {
	Config *config.Config
	Users  store.UserStore
	Foods  store.FoodStore
	Codes  store.CodeStore
	Mailer user.Mailer
	Redis  *redis.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	auth := middleware.AuthRequired(d.Config.JWTSecret)

	// Auth
	r.POST("/signup", middleware.SignupRateLimit(d.Redis), user.Signup(d.Users))
	r.POST("/login", middleware.LoginRateLimit(d.Redis), user.Login(d.Users, d.Config.JWTSecret))
	r.POST("/logout", user.Logout())
	r.GET("/user", auth, user.Me(d.Users))
	r.POST("/reset-password", middleware.ForgotPasswordRateLimit(d.Redis),
		user.ResetPassword(d.Users, d.Codes, d.Mailer))
	r.POST("/verify-otp", user.VerifyOtp(d.Users, d.Codes))

	// Panier
	r.POST("/cart/clear", auth, user.ClearCart(d.Users, d.Foods))
	r.POST("/cart/:userId", user.AddToCart(d.Users, d.Foods))
	r.GET("/cart/:userId", user.GetCart(d.Foods))
	r.DELETE("/cart/:id", auth, user.RemoveFromCart(d.Users, d.Foods))
	r.PUT("/cart/increment/:id", user.IncrementQuantity(d.Foods))
	r.PUT("/cart/decrement/:id", user.DecrementQuantity(d.Users, d.Foods))

	// Paiement
	r.POST("/checkout", auth, payement.Checkout(d.Foods, d.Config))
}
