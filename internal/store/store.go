package store

import (
	"context"
	"errors"
	"time"

	"quickplate_back_end/internal/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("already exists")
	ErrMinQuantity = errors.New("quantity already at the minimum limit")
)

// UserStore persiste les comptes utilisateurs (collection users).
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)

	// SetOtp pose le code de réinitialisation sur le compte.
	SetOtp(ctx context.Context, userID, otp string) error
	// ResetPassword remplace le mot de passe si le code correspond
	// encore à ce compte précis, puis efface le code.
	ResetPassword(ctx context.Context, userID, otp, hashedPassword string) error

	PushCartItem(ctx context.Context, userID, foodID string) error
	PullCartItem(ctx context.Context, userID, foodID string) error
	ClearCartItems(ctx context.Context, userID string) error
}

// FoodStore persiste les lignes de panier (collection foods).
//
// Increment et Decrement sont des écritures atomiques côté base qui
// recalculent total_price à partir de la nouvelle quantité ; deux
// mutations concurrentes sur la même ligne se sérialisent donc dans le
// store, jamais en lecture-modification-écriture côté serveur.
type FoodStore interface {
	Insert(ctx context.Context, food *models.Food) error
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Food, error)
	FindByUser(ctx context.Context, userID string) ([]models.Food, error)

	Increment(ctx context.Context, id string) (*models.Food, error)
	// Decrement renvoie removed=true quand la quantité est passée de 1
	// à 0 : la ligne est alors supprimée, jamais conservée à zéro.
	Decrement(ctx context.Context, id string) (food *models.Food, removed bool, err error)

	DeleteOwned(ctx context.Context, id, userID string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// CodeStore lie un code de réinitialisation à l'utilisateur qui l'a
// demandé, avec expiration : un code deviné ne peut plus réécrire un
// compte arbitraire.
type CodeStore interface {
	BindCode(ctx context.Context, code, userID string, ttl time.Duration) error
	// LookupCode renvoie "" si le code est inconnu ou expiré.
	LookupCode(ctx context.Context, code string) (string, error)
	DeleteCode(ctx context.Context, code string) error
}
