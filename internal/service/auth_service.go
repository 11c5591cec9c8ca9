package service

import (
	"fmt"
	"strings"
	"time"

	taxdash_errors "taxdash/internal"
	"taxdash/internal/db/models/postgres/public/model"
	"taxdash/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// SignUp and LogIn return a signed access token on success.
	SignUp(email, password string) (string, error)
	LogIn(email, password string) (string, error)
	ParseToken(token string) (uuid.UUID, error)
	GetUser(userID uuid.UUID) (*model.User, error)
}

type authServiceHandler struct {
	UserRepository repository.UserRepository
	JWTSecret      string
	TokenExpiry    time.Duration
	Logger         *logrus.Logger
}

func NewAuthService(
	userRepository repository.UserRepository,
	jwtSecret string,
	tokenExpiry time.Duration,
	logger *logrus.Logger,
) AuthService {
	return authServiceHandler{
		UserRepository: userRepository,
		JWTSecret:      jwtSecret,
		TokenExpiry:    tokenExpiry,
		Logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h authServiceHandler) SignUp(email, password string) (string, error) {
	email = normalizeEmail(email)

	existing, err := h.UserRepository.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", taxdash_errors.ErrEmailAlreadyRegistered{Email: email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := h.UserRepository.Add(email, string(hash))
	if err != nil {
		return "", err
	}
	h.Logger.WithField("userID", user.UserID).Info("registered new user")

	return h.issueToken(user.UserID)
}

func (h authServiceHandler) LogIn(email, password string) (string, error) {
	user, err := h.UserRepository.GetByEmail(normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", taxdash_errors.ErrInvalidCredentials{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", taxdash_errors.ErrInvalidCredentials{}
	}

	return h.issueToken(user.UserID)
}

func (h authServiceHandler) issueToken(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(h.TokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (h authServiceHandler) ParseToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(h.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, fmt.Errorf("token missing subject")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject is not a user id: %w", err)
	}
	return userID, nil
}

func (h authServiceHandler) GetUser(userID uuid.UUID) (*model.User, error) {
	return h.UserRepository.Get(userID)
}
