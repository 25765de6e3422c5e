package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOtp produit un code numérique à 4 chiffres ("0000"–"9999").
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
