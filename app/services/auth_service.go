package services

import (
	"errors"
	"strings"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/auth"
	"gorm.io/gorm"
)

// AuthService handles registration, login, and profile updates.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a user and returns it with a signed token.
func (s *AuthService) Register(name, email, password, mobile string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
		Mobile:   mobile,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if user.Blocked {
		return models.User{}, "", ErrBlocked
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// ChangePassword rotates the password after checking the current one.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !auth.CheckPassword(user.Password, current) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.users.Update(&user)
}

// UpdateProfile writes the mutable profile fields.
func (s *AuthService) UpdateProfile(userID uint, name, mobile, avatarURL string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if mobile != "" {
		user.Mobile = mobile
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	return user, s.users.Update(&user)
}

// SetBlocked flips the blocked flag on an account (admin action).
func (s *AuthService) SetBlocked(userID uint, blocked bool) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	user.Blocked = blocked
	return user, s.users.Update(&user)
}
