package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickplate_back_end/internal/models"
)

// Foods implémente FoodStore sur la collection MongoDB "foods".
type Foods struct {
	col *mongo.Collection
}

func NewFoods(db *mongo.Database) *Foods {
	return &Foods{col: db.Collection("foods")}
}

// incPipeline recalcule quantity et total_price dans la même écriture
// atomique, à partir du document stocké et non d'un instantané lu avant.
func incPipeline(delta int) []bson.M {
	return []bson.M{{
		"$set": bson.M{
			"quantity": bson.M{"$add": bson.A{"$quantity", delta}},
			"total_price": bson.M{"$multiply": bson.A{
				"$price",
				bson.M{"$add": bson.A{"$quantity", delta}},
			}},
		},
	}}
}

func (s *Foods) Insert(ctx context.Context, food *models.Food) error {
	_, err := s.col.InsertOne(ctx, food)
	return err
}

func (s *Foods) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Food, error) {
	var food models.Food
	err := s.col.FindOne(ctx, bson.M{"user_id": userID, "id": productID}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *Foods) FindByUser(ctx context.Context, userID string) ([]models.Food, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *Foods) Increment(ctx context.Context, id string) (*models.Food, error) {
	var food models.Food
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		incPipeline(1),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *Foods) Decrement(ctx context.Context, id string) (*models.Food, bool, error) {
	// Cas courant : quantité > 1, décrément atomique.
	var food models.Food
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "quantity": bson.M{"$gt": 1}},
		incPipeline(-1),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&food)
	if err == nil {
		return &food, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	// Quantité 1 : la ligne est retirée plutôt que conservée à zéro.
	err = s.col.FindOneAndDelete(ctx, bson.M{"_id": id, "quantity": 1}).Decode(&food)
	if err == nil {
		food.Quantity = 0
		food.TotalPrice = 0
		return &food, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	// Ni décrémentée ni supprimée : absente, ou déjà au plancher.
	err = s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}
	return nil, false, ErrMinQuantity
}

func (s *Foods) DeleteOwned(ctx context.Context, id, userID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Foods) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
