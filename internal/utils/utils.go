package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/greencityconnect/waste-backend/internal/config"
)

// GenerateJWT generates a signed token for a user or admin identity
func GenerateJWT(subjectID string, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"exp":  time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateHouseholdID derives the human-readable account reference from a
// user's name and address. The derivation is deterministic: initials from the
// name, followed by the first four hex digits of a 32-bit string hash of the
// address.
func GenerateHouseholdID(name, address string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		initials.WriteString(strings.ToUpper(string(r[0])))
	}

	var hash int32
	for _, c := range address {
		hash = (hash << 5) - hash + int32(c)
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	hex := strings.ToUpper(strconv.FormatInt(abs, 16))
	if len(hex) > 4 {
		hex = hex[:4]
	}

	return fmt.Sprintf("GCC-%s-%s", initials.String(), hex)
}

// NewTransactionRef generates a transaction reference for a payment
func NewTransactionRef() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN-" + id[:12]
}

// FirstOfNextMonth returns midnight on the first day of the month after t
func FirstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
