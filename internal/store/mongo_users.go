package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickplate_back_end/internal/models"
)

// Users implémente UserStore sur la collection MongoDB "users".
type Users struct {
	col *mongo.Collection
}

// NewUsers prépare la collection et pose l'index unique sur l'email.
func NewUsers(ctx context.Context, db *mongo.Database) (*Users, error) {
	col := db.Collection("users")
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &Users{col: col}, nil
}

func (s *Users) Create(ctx context.Context, user *models.User) error {
	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) SetOtp(ctx context.Context, userID, otp string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"otp": otp}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Users) ResetPassword(ctx context.Context, userID, otp, hashedPassword string) error {
	// Le filtre exige _id ET otp : le code ne vaut que pour le compte
	// qui l'a demandé, et une seule fois.
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID, "otp": otp},
		bson.M{
			"$set":   bson.M{"password": hashedPassword},
			"$unset": bson.M{"otp": ""},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Users) PushCartItem(ctx context.Context, userID, foodID string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$push": bson.M{"cart_items": foodID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Users) PullCartItem(ctx context.Context, userID, foodID string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"cart_items": foodID}})
	return err
}

func (s *Users) ClearCartItems(ctx context.Context, userID string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$set": bson.M{"cart_items": []string{}}})
	return err
}
