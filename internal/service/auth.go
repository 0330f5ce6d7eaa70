package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pjreceita/receitas-backend/internal/models"
	"github.com/pjreceita/receitas-backend/internal/types"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	logs      *zap.SugaredLogger
}

func NewAuthService(db *gorm.DB, jwtSecret string, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		logs:      logger,
	}
}

// Login verifies the credentials against the user store and issues a
// signed token. Unknown username and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return "", err
	}

	s.logs.Infow("user logged in", "username", user.Username)
	return token, nil
}

// Register creates a user with a bcrypt-hashed password and returns a
// token for the fresh account. Email is optional.
func (s *AuthService) Register(username, email, password string) (string, error) {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if email != "" {
		user.Email = &email
	}

	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user registered", "username", user.Username)
	return s.generateToken(user.Username)
}

func (s *AuthService) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks signature and expiry and returns the decoded
// identity.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return nil, ErrTokenInvalid
	}

	return &types.TokenClaims{Username: username}, nil
}
