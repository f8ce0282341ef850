package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/carelog-dev/carelog/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 60 * time.Minute

var (
	jwtSecret string
	tokenTTL  = defaultTokenTTL
)

func InitJWT() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	tokenTTL = defaultTokenTTL

	if raw := os.Getenv("JWT_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("JWT_TTL_MINUTES must be a positive integer, got %q", raw)
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	return nil
}

// Claims is the decoded payload of a bearer token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

// GenerateJWT signs a token for the user and returns it together with its
// absolute expiry, so callers never need shared mutable expiry state.
func GenerateJWT(user models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(tokenTTL)

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func VerifyJWT(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return Claims{}, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok || subject == "" {
		return Claims{}, fmt.Errorf("token is missing a subject")
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return Claims{}, fmt.Errorf("token is missing an email")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid subject in token claims")
	}

	claims := Claims{UserID: userID, Email: email}

	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = models.Role(role)
	}

	return claims, nil
}
