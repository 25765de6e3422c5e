package models

// Food est une ligne du panier. Les champs produit sont copiés tels
// quels au moment de l'ajout : le prix du panier est un instantané, pas
// une référence vers un catalogue.
//
// Invariant : TotalPrice == Price * Quantity après chaque mutation.
type Food struct {
	ID         string  `bson:"_id" json:"_id"`
	ProductID  string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Rating     float64 `bson:"rating" json:"rating"`
	Image      string  `bson:"image" json:"image"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	TotalPrice float64 `bson:"total_price" json:"totalPrice"`
	UserID     string  `bson:"user_id" json:"userId"`
}
