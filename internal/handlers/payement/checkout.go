package payement

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"

	"quickplate_back_end/internal/config"
	"quickplate_back_end/internal/models"
	"quickplate_back_end/internal/store"
)

// Checkout lit le panier courant et crée une session de paiement
// hébergée chez Stripe. Le panier n'est pas vidé ici (c'est /cart/clear
// qui le fait) et aucun enregistrement local du paiement n'est créé.
//
// POST /checkout — authentifié.
func Checkout(foods store.FoodStore, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		items, err := foods.FindByUser(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Cart lookup failed"))
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, models.Err("No items found"))
			return
		}

		params := &stripe.CheckoutSessionParams{
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
			LineItems:          buildLineItems(items),
			SuccessURL:         stripe.String(cfg.CheckoutSuccessURL),
			CancelURL:          stripe.String(cfg.CheckoutCancelURL),
		}

		s, err := session.New(params)
		if err != nil {
			log.Printf("❌ Erreur Stripe: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err("Failed to create checkout session"))
			return
		}

		log.Printf("💳 Session checkout créée : %s (%d articles)", s.ID, len(items))
		c.JSON(http.StatusOK, models.Response{Success: true, URL: s.URL})
	}
}

// buildLineItems traduit les lignes du panier en lignes Stripe :
// devise fixe, montant unitaire en sous-unités (prix × 100), quantité
// passée telle quelle.
func buildLineItems(items []models.Food) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("inr"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Name),
					Images: stripe.StringSlice([]string{item.Image}),
				},
				UnitAmount: stripe.Int64(int64(item.Price * 100)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	return lineItems
}
