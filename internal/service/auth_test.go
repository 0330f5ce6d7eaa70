package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pjreceita/receitas-backend/internal/models"
	"github.com/pjreceita/receitas-backend/internal/testhelpers"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	return NewAuthService(db, testSecret, zap.NewNop().Sugar()), db
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, db := newAuthService(t)

	token, err := svc.Register("maria", "maria@example.com", "minha-senha")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	var user models.User
	assert.NoError(t, db.Where("username = ?", "maria").First(&user).Error)
	assert.NotEqual(t, "minha-senha", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "minha-senha")
	if assert.NotNil(t, user.Email) {
		assert.Equal(t, "maria@example.com", *user.Email)
	}
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("maria", "", "minha-senha")
	assert.NoError(t, err)

	_, err = svc.Register("maria", "", "outra-senha")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginIssuesTokenForUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("maria", "", "minha-senha")
	assert.NoError(t, err)

	tokenString, err := svc.Login("maria", "minha-senha")
	assert.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "maria", claims["username"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("maria", "", "minha-senha")
	assert.NoError(t, err)

	_, wrongPass := svc.Login("maria", "senha-errada")
	_, unknownUser := svc.Login("joana", "minha-senha")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestValidateToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("maria", "", "minha-senha")
	assert.NoError(t, err)
	tokenString, err := svc.Login("maria", "minha-senha")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "maria", claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc, _ := newAuthService(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "maria",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("another-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	svc, _ := newAuthService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "maria",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.ValidateToken("nem-um-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
