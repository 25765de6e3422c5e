package models

// User — le mot de passe et le code OTP ne sont jamais sérialisés vers
// le client.
type User struct {
	ID        string   `bson:"_id" json:"userId"`
	Name      string   `bson:"name" json:"name"`
	Email     string   `bson:"email" json:"email"`
	Password  string   `bson:"password" json:"-"`
	Otp       string   `bson:"otp,omitempty" json:"-"`
	CartItems []string `bson:"cart_items" json:"cartItems"`
}
