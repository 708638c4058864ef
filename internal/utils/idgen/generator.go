package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureID returns an identifier of the form "<prefix>_<random>",
// where the random suffix has the requested length and is drawn from a
// lowercase alphanumeric alphabet using crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("idgen: length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("idgen: read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return prefix + "_" + string(buf), nil
}

// ValidateIDFormat reports whether id is a well formed identifier carrying the
// expected prefix.
func ValidateIDFormat(id, expectedPrefix string) bool {
	if id == "" || expectedPrefix == "" {
		return false
	}
	rest, ok := strings.CutPrefix(id, expectedPrefix+"_")
	if !ok || rest == "" {
		return false
	}
	for _, char := range rest {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
