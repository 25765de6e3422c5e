package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration du processus, chargée une seule
// fois au démarrage puis injectée dans les composants (jamais relue
// pendant une requête).
type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	AllowedOrigins []string
}

// Load charge le .env puis construit la configuration depuis les
// variables d'environnement.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "5000"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDB:            getEnv("MONGO_DB", "quickplate"),
		RedisAddr:          os.Getenv("REDIS_HOST"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       os.Getenv("SMTP_USERNAME"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		MailFrom:           getEnv("MAIL_FROM", "noreply@quick-plate.app"),
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "https://quick-plate.vercel.app/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "https://quick-plate.vercel.app/"),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS",
			"http://localhost:5173", "https://quick-plate.vercel.app"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGO_URI manquant dans .env")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitEnv(key string, fallback ...string) []string {
	if v := os.Getenv(key); v != "" {
		return strings.Split(v, ",")
	}
	return fallback
}
