package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"

	"quickplate_back_end/internal/config"
	"quickplate_back_end/internal/database"
	"quickplate_back_end/internal/routes"
	"quickplate_back_end/internal/store"
	"quickplate_back_end/internal/utils"
)

func main() {
	cfg := config.Load()

	stripe.Key = cfg.StripeSecretKey
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	ctx := context.Background()

	client, db, err := database.ConnectMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Erreur connexion MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Erreur connexion Redis: %v", err)
	}
	defer rdb.Close()

	users, err := store.NewUsers(ctx, db)
	if err != nil {
		log.Fatalf("❌ Erreur initialisation collection users: %v", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Config: cfg,
		Users:  users,
		Foods:  store.NewFoods(db),
		Codes:  store.NewRedisCodes(rdb),
		Mailer: utils.NewSMTPMailer(cfg),
		Redis:  rdb,
	})

	log.Println("🚀 Serveur quick-plate lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Erreur serveur HTTP: %v", err)
	}
}
