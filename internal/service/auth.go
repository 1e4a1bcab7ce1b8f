package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/config"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
	"github.com/leon37/SavingsCoach/internal/validator"
)

// Token verification failure reasons. The HTTP boundary collapses all of
// them to 401; they stay distinct here for logs and tests.
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("invalid token")
)

type AuthService struct {
	users  repository.UserRepo
	secret []byte
	expire time.Duration
}

func NewAuthService(users repository.UserRepo, cfg config.JWTConfig) *AuthService {
	expire := time.Duration(cfg.ExpireHours) * time.Hour
	if expire <= 0 {
		expire = 168 * time.Hour
	}
	return &AuthService{
		users:  users,
		secret: []byte(cfg.Secret),
		expire: expire,
	}
}

// Register validates, hashes and persists a new user, returning a session
// token alongside. Duplicate emails are a conflict.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return "", nil, apperr.BadRequest("Email, password, and name are required")
	}
	if !validator.Email(email) {
		return "", nil, apperr.BadRequest("Invalid email format")
	}
	if err := validator.Password(password); err != nil {
		return "", nil, apperr.BadRequest(err.Error())
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", nil, apperr.Conflict("User with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", nil, err
	}
	user := &model.User{
		ID:        id.String(),
		Email:     email,
		Name:      name,
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and issues a token. Lookup miss and password
// mismatch return the same generic 401 to avoid account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.BadRequest("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, apperr.Unauthorized("Invalid email or password")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := s.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me fetches the record behind a verified token.
func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// GenerateToken signs an HS256 token carrying {user_id, email, exp}.
func (s *AuthService) GenerateToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(s.expire).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken checks signature and expiry, reporting a distinct reason per
// failure class. There is no revocation list; logout is client-side.
func (s *AuthService) VerifyToken(tokenString string) (*model.AuthClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil, !token.Valid:
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	return &model.AuthClaims{UserID: userID, Email: email}, nil
}
