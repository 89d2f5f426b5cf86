package cats

import (
	"math/rand/v2"
	"strings"
)

const (
	// IDLength es el largo fijo de un id de gato.
	IDLength = 10
	// IDAlphabet son los caracteres permitidos en un id.
	IDAlphabet = "CAT0123456789"
)

// GenerateID arma un id aleatorio de IDLength caracteres tomados de IDAlphabet.
// No chequea colisiones contra ids existentes.
func GenerateID() string {
	var b strings.Builder
	b.Grow(IDLength)
	for range IDLength {
		b.WriteByte(IDAlphabet[rand.IntN(len(IDAlphabet))])
	}
	return b.String()
}

// NormalizeID limpia y pasa a mayúsculas un id ingresado a mano.
// Devuelve ErrInvalidID si no tiene exactamente IDLength caracteres de IDAlphabet.
func NormalizeID(raw string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	if !ValidID(id) {
		return "", ErrInvalidID
	}
	return id, nil
}

// ValidID reporta si id ya tiene la forma canónica (sin normalizar).
func ValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(IDAlphabet, id[i]) < 0 {
			return false
		}
	}
	return true
}
