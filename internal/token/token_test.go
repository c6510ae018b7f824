package token

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medreports-backend/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "patient@x.com",
		Role:  models.UserRoleUser,
	}
}

func TestIssueAndParse(t *testing.T) {
	svc := NewService("secret")
	user := testUser()

	tokenString, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestIssueOmitsExpiry(t *testing.T) {
	svc := NewService("secret")

	tokenString, err := svc.Issue(testUser())
	require.NoError(t, err)

	parsed, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	require.NoError(t, err)
	_, hasExp := parsed.Claims.(jwt.MapClaims)["exp"]
	assert.False(t, hasExp, "tokens are intentionally non-expiring")
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tokenString, err := NewService("secret-a").Issue(testUser())
	require.NoError(t, err)

	_, err = NewService("secret-b").Parse(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewService("secret")

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	svc := NewService("secret")

	tokenString, err := svc.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = svc.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	svc := NewService("secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "patient@x.com",
		"role":    "admin",
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMalformedClaims(t *testing.T) {
	svc := NewService("secret")

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "not-a-uuid",
		"email":   "patient@x.com",
		"role":    "user",
	})
	tokenString, err := signed.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Parse(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
