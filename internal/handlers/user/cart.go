package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quickplate_back_end/internal/models"
	"quickplate_back_end/internal/store"
)

//
// 🟢 POST /cart/:userId
//
func AddToCart(users store.UserStore, foods store.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var input struct {
			ID       string  `json:"id" binding:"required"`
			Name     string  `json:"name" binding:"required"`
			Price    float64 `json:"price"`
			Rating   float64 `json:"rating"`
			Image    string  `json:"image"`
			Quantity int     `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.Err("Invalid request"))
			return
		}
		if input.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, models.Err("Invalid quantity"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Déjà au panier pour ce (user, produit) ? Un seul document,
		// quantité +1 — la quantité demandée est ignorée sur ce chemin.
		existing, err := foods.FindByUserAndProduct(ctx, userID, input.ID)
		if err == nil {
			if _, err := foods.Increment(ctx, existing.ID); err != nil {
				c.JSON(http.StatusBadRequest, models.Err("Failed to update the cart item"))
				return
			}
			c.JSON(http.StatusOK, models.Ok("Cart item updated"))
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, models.Err("An error occurred while adding to the cart"))
			return
		}

		food := &models.Food{
			ID:         primitive.NewObjectID().Hex(),
			ProductID:  input.ID,
			Name:       input.Name,
			Price:      input.Price,
			Rating:     input.Rating,
			Image:      input.Image,
			Quantity:   input.Quantity,
			TotalPrice: input.Price * float64(input.Quantity),
			UserID:     userID,
		}

		if err := foods.Insert(ctx, food); err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("An error occurred while adding to the cart"))
			return
		}

		if err := users.PushCartItem(ctx, userID, food.ID); err != nil {
			c.JSON(http.StatusBadRequest, models.Err("Failed to add food item to user cart"))
			return
		}

		c.JSON(http.StatusOK, models.Ok("Added to cart"))
	}
}

//
// 📦 GET /cart/:userId
//
func GetCart(foods store.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		items, err := foods.FindByUser(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Cart lookup failed"))
			return
		}
		if len(items) == 0 {
			// condition visible côté client, pas une vraie erreur
			c.JSON(http.StatusBadRequest, models.Err("No items found"))
			return
		}

		c.JSON(http.StatusOK, models.Response{Success: true, CartItems: items})
	}
}

//
// ❌ DELETE /cart/:id — authentifié, suppression restreinte au
// propriétaire de la ligne.
//
func RemoveFromCart(users store.UserStore, foods store.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := foods.DeleteOwned(ctx, id, userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.Err("Food not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Failed to remove from cart"))
			return
		}

		if err := users.PullCartItem(ctx, userID, id); err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Failed to remove from cart"))
			return
		}

		c.JSON(http.StatusOK, models.Ok("Removed from cart"))
	}
}

//
// ➕ PUT /cart/increment/:id
//
func IncrementQuantity(foods store.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		food, err := foods.Increment(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.Err("Food not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Failed to increment quantity"))
			return
		}

		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Food quantity incremented",
			Food:    food,
		})
	}
}

//
// ➖ PUT /cart/decrement/:id
//
func DecrementQuantity(users store.UserStore, foods store.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		food, removed, err := foods.Decrement(ctx, id)
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrMinQuantity) {
			c.JSON(http.StatusBadRequest, models.Err(
				"Food item not found or quantity is already at the minimum limit"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Failed to decrement quantity"))
			return
		}

		// Quantité tombée à zéro : la ligne est retirée du panier et de
		// la liste du propriétaire.
		if removed {
			if err := users.PullCartItem(ctx, food.UserID, food.ID); err != nil {
				c.JSON(http.StatusInternalServerError, models.Err("Failed to decrement quantity"))
				return
			}
		}

		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Food quantity decremented",
			Food:    food,
		})
	}
}

//
// 🧹 POST /cart/clear — authentifié.
//
func ClearCart(users store.UserStore, foods store.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Succès même si le panier était déjà vide.
		if _, err := foods.DeleteByUser(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Failed to clear cart"))
			return
		}
		if err := users.ClearCartItems(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, models.Err("Failed to clear cart"))
			return
		}

		c.JSON(http.StatusOK, models.Ok("Order Confirmed"))
	}
}
