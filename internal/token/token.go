package token

import (
	"errors"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"medreports-backend/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload embedded in every issued token. Role is informative
// only: authorization re-reads the user row per request, so a stale role claim
// never grants access the store would deny.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token with no expiry claim. Tokens stay valid until the
// signing secret rotates; inherited behavior, kept on purpose.
func (s *Service) Issue(user *models.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    string(user.Role),
	})
	return t.SignedString(s.secret)
}

func (s *Service) Parse(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: userID, Email: email, Role: role}, nil
}
