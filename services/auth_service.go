package services

import (
	"fmt"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of persistence auth needs.
type UserStore interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	CountByEmail(email string) (int64, error)
}

type AuthService struct {
	Users     UserStore
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, JWTSecret: secret, JWTTTL: ttl}
}

// Register creates a user; a duplicate email is rejected.
func (s *AuthService) Register(email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Email: email, Password: string(hashed)}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrValidation)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrValidation)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID string) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, userID)
	}
	return user, nil
}
