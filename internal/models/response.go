package models

// Response est l'enveloppe JSON unique de toutes les routes : une seule
// forme succès-ou-erreur au lieu d'un gin.H ad hoc par handler.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	User      *User  `json:"user,omitempty"`
	CartItems []Food `json:"cartItems,omitempty"`
	Food      *Food  `json:"food,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Ok construit une réponse succès avec message seul.
func Ok(message string) Response {
	return Response{Success: true, Message: message}
}

// Err construit une réponse d'erreur affichable par le client.
func Err(message string) Response {
	return Response{Success: false, Message: message}
}
